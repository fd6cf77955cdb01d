package main

import (
	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
)

func faucet(conf *faucetConfig) error {
	secretKey, err := resolveSecretKey(&conf.secretKeyFlags)
	if err != nil {
		return err
	}

	tx, err := libdanwallet.CreateFreeTestCoinsTransaction(&libdanwallet.FreeTestCoinsParams{
		IsNewAccount:     conf.IsNewAccount,
		AccountSecretKey: secretKey,
		Amount:           conf.Amount,
		Fee:              conf.Fee,
	})
	if err != nil {
		return err
	}
	return outputTransaction(tx, &conf.StoreFlags)
}
