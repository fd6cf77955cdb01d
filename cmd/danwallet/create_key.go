package main

import (
	"fmt"

	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
)

func createKey(conf *createKeyConfig) error {
	mnemonic, err := libdanwallet.CreateMnemonic()
	if err != nil {
		return err
	}
	secretKey, err := libdanwallet.SecretKeyFromMnemonic(mnemonic, conf.AccountIndex)
	if err != nil {
		return err
	}
	publicKey, err := libdanwallet.BuildPublicKey(secretKey)
	if err != nil {
		return err
	}
	accountAddress, err := libdanwallet.GetAccountComponentAddress(publicKey)
	if err != nil {
		return err
	}

	fmt.Printf("Mnemonic (keep it secret):\n%s\n\n", mnemonic)
	fmt.Printf("Account index:\t%d\n", conf.AccountIndex)
	fmt.Printf("Secret key:\t%s\n", secretKey)
	fmt.Printf("Public key:\t%s\n", publicKey)
	fmt.Printf("Account:\t%s\n", accountAddress)
	return nil
}
