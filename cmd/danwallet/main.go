package main

import "github.com/pkg/errors"

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case createKeySubCmd:
		err = createKey(config.(*createKeyConfig))
	case publicKeySubCmd:
		err = publicKey(config.(*publicKeyConfig))
	case showAddressSubCmd:
		err = showAddress(config.(*showAddressConfig))
	case transferSubCmd:
		err = transfer(config.(*transferConfig))
	case faucetSubCmd:
		err = faucet(config.(*faucetConfig))
	case createTransactionSubCmd:
		err = createTransaction(config.(*createTransactionConfig))
	case verifySubCmd:
		err = verify(config.(*verifyConfig))
	case listSubCmd:
		err = list(config.(*listConfig))
	case versionSubCmd:
		printVersion()
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
