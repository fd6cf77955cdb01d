package main

import (
	"fmt"

	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
)

func verify(conf *verifyConfig) error {
	serializedTransaction, err := readInput(conf.TransactionFile)
	if err != nil {
		return err
	}
	tx, err := libdanwallet.DeserializeTransaction(serializedTransaction)
	if err != nil {
		return err
	}
	err = libdanwallet.VerifyTransaction(tx)
	if err != nil {
		return err
	}
	fmt.Printf("Transaction %s is valid, signed by %s\n", tx.ID, tx.Signature.PublicKey)
	return nil
}
