package main

import (
	"os"

	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/danlabs/danwallet/infrastructure/config"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	createKeySubCmd         = "create-key"
	publicKeySubCmd         = "public-key"
	showAddressSubCmd       = "show-address"
	transferSubCmd          = "transfer"
	faucetSubCmd            = "faucet"
	createTransactionSubCmd = "create-transaction"
	verifySubCmd            = "verify"
	listSubCmd              = "list"
	versionSubCmd           = "version"
)

type configFlags struct {
	config.LogFlags
	config.StoreFlags
}

// secretKeyFlags selects the signing key: a hex secret key, a mnemonic and
// account index, or an interactive prompt when neither is given.
type secretKeyFlags struct {
	SecretKey    string `long:"secret-key" short:"k" description:"The secret key (encoded in hex)"`
	Mnemonic     bool   `long:"mnemonic" short:"m" description:"Prompt for a mnemonic instead of a secret key"`
	AccountIndex uint32 `long:"account-index" short:"i" description:"Account index to derive from the mnemonic" default:"0"`
}

type createKeyConfig struct {
	AccountIndex uint32 `long:"account-index" short:"i" description:"Account index to derive from the new mnemonic" default:"0"`
	config.LogFlags
}

type publicKeyConfig struct {
	secretKeyFlags
	config.LogFlags
}

type showAddressConfig struct {
	PublicKey string `long:"public-key" short:"p" description:"The public key of the account owner (encoded in hex)" required:"true"`
	config.LogFlags
}

type transferConfig struct {
	secretKeyFlags
	DestinationPublicKey     string       `long:"to" short:"t" description:"The public key of the destination account owner (encoded in hex)" required:"true"`
	ResourceAddress          string       `long:"resource" short:"r" description:"The resource to transfer (resource_<hex>)" required:"true"`
	Amount                   types.Amount `long:"amount" short:"v" description:"The amount to transfer" required:"true"`
	Fee                      types.Amount `long:"fee" short:"f" description:"The fee to pay" default:"1"`
	CreateDestinationAccount bool         `long:"create-account" description:"Create the destination account as part of the transfer"`
	config.LogFlags
	config.StoreFlags
}

type faucetConfig struct {
	secretKeyFlags
	Amount       types.Amount `long:"amount" short:"v" description:"The amount of test coins to mint" required:"true"`
	Fee          types.Amount `long:"fee" short:"f" description:"The fee to pay" default:"1"`
	IsNewAccount bool         `long:"new-account" description:"Create the account as part of the request"`
	config.LogFlags
	config.StoreFlags
}

type createTransactionConfig struct {
	secretKeyFlags
	InstructionsFile string   `long:"instructions" description:"JSON file holding the list of instructions ('-' for stdin)" required:"true"`
	InputRefs        []string `long:"input-ref" description:"Shard id the transaction reads (encoded in hex), may be repeated"`
	config.LogFlags
	config.StoreFlags
}

type verifyConfig struct {
	TransactionFile string `long:"transaction" short:"t" description:"JSON file holding the transaction ('-' for stdin)" default:"-"`
	config.LogFlags
}

type listConfig struct {
	config.LogFlags
	config.StoreFlags
}

type versionConfig struct{}

func parseCommandLine() (subCommand string, subCommandConfig interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	createKeyConf := &createKeyConfig{}
	parser.AddCommand(createKeySubCmd, "Creates a new key",
		"Creates a new mnemonic and prints the secret key, public key and account address of one of its accounts",
		createKeyConf)

	publicKeyConf := &publicKeyConfig{}
	parser.AddCommand(publicKeySubCmd, "Prints the public key of a secret key",
		"Prints the public key of a secret key", publicKeyConf)

	showAddressConf := &showAddressConfig{}
	parser.AddCommand(showAddressSubCmd, "Shows the account addresses of a public key",
		"Shows the account and account NFT component addresses owned by a public key", showAddressConf)

	transferConf := &transferConfig{}
	parser.AddCommand(transferSubCmd, "Creates a transfer transaction",
		"Creates and signs a transaction moving a resource from your account to another", transferConf)

	faucetConf := &faucetConfig{}
	parser.AddCommand(faucetSubCmd, "Creates a free test coins transaction",
		"Creates and signs a transaction minting test coins into your account", faucetConf)

	createTransactionConf := &createTransactionConfig{}
	parser.AddCommand(createTransactionSubCmd, "Creates a transaction from a list of instructions",
		"Creates and signs a transaction from a JSON list of instructions", createTransactionConf)

	verifyConf := &verifyConfig{}
	parser.AddCommand(verifySubCmd, "Verifies a transaction",
		"Verifies the signature and id of a JSON transaction", verifyConf)

	listConf := &listConfig{}
	parser.AddCommand(listSubCmd, "Lists stored transactions",
		"Lists the transactions recorded in the local transaction store", listConf)

	parser.AddCommand(versionSubCmd, "Prints the version",
		"Prints the version", &versionConfig{})

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	switch parser.Command.Active.Name {
	case createKeySubCmd:
		resolveLogging(&createKeyConf.LogFlags, cfg)
		subCommandConfig = createKeyConf
	case publicKeySubCmd:
		resolveLogging(&publicKeyConf.LogFlags, cfg)
		subCommandConfig = publicKeyConf
	case showAddressSubCmd:
		resolveLogging(&showAddressConf.LogFlags, cfg)
		subCommandConfig = showAddressConf
	case transferSubCmd:
		resolveLogging(&transferConf.LogFlags, cfg)
		config.CombineStoreFlags(&transferConf.StoreFlags, &cfg.StoreFlags)
		subCommandConfig = transferConf
	case faucetSubCmd:
		resolveLogging(&faucetConf.LogFlags, cfg)
		config.CombineStoreFlags(&faucetConf.StoreFlags, &cfg.StoreFlags)
		subCommandConfig = faucetConf
	case createTransactionSubCmd:
		resolveLogging(&createTransactionConf.LogFlags, cfg)
		config.CombineStoreFlags(&createTransactionConf.StoreFlags, &cfg.StoreFlags)
		subCommandConfig = createTransactionConf
	case verifySubCmd:
		resolveLogging(&verifyConf.LogFlags, cfg)
		subCommandConfig = verifyConf
	case listSubCmd:
		resolveLogging(&listConf.LogFlags, cfg)
		config.CombineStoreFlags(&listConf.StoreFlags, &cfg.StoreFlags)
		subCommandConfig = listConf
	case versionSubCmd:
		subCommandConfig = &versionConfig{}
	}

	return parser.Command.Active.Name, subCommandConfig
}

func resolveLogging(logFlags *config.LogFlags, cfg *configFlags) {
	config.CombineLogFlags(logFlags, &cfg.LogFlags)
	err := logFlags.ResolveLogging()
	if err != nil {
		printErrorAndExit(err)
	}
}
