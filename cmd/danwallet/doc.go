/*
danwallet creates keys, derives account addresses and builds signed
transactions for the Tari DAN engine. It does not talk to the network:
transactions are printed as JSON, and recorded in a local transaction store
unless --nostore is given.

Usage:

	danwallet [OPTIONS] <command> [COMMAND OPTIONS]

Commands:

	create-key          Creates a new mnemonic and prints one of its accounts
	public-key          Prints the public key of a secret key
	show-address        Shows the account addresses of a public key
	transfer            Creates a transfer transaction
	faucet              Creates a free test coins transaction
	create-transaction  Creates a transaction from a JSON list of instructions
	verify              Verifies a JSON transaction
	list                Lists stored transactions
	version             Prints the version

Secret keys are read from --secret-key, derived from a prompted mnemonic with
--mnemonic, or prompted for when neither is given.

For an up-to-date help message:

	danwallet --help
	danwallet <command> --help
*/
package main
