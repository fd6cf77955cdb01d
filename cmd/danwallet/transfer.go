package main

import (
	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
)

func transfer(conf *transferConfig) error {
	secretKey, err := resolveSecretKey(&conf.secretKeyFlags)
	if err != nil {
		return err
	}

	tx, err := libdanwallet.CreateTransferTransaction(&libdanwallet.TransferParams{
		SourceSecretKey:          secretKey,
		DestinationPublicKey:     conf.DestinationPublicKey,
		CreateDestinationAccount: conf.CreateDestinationAccount,
		ResourceAddress:          conf.ResourceAddress,
		Amount:                   conf.Amount,
		Fee:                      conf.Fee,
	})
	if err != nil {
		return err
	}
	return outputTransaction(tx, &conf.StoreFlags)
}
