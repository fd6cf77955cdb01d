package main

import (
	"fmt"

	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
)

func publicKey(conf *publicKeyConfig) error {
	secretKey, err := resolveSecretKey(&conf.secretKeyFlags)
	if err != nil {
		return err
	}
	publicKey, err := libdanwallet.BuildPublicKey(secretKey)
	if err != nil {
		return err
	}
	fmt.Println(publicKey)
	return nil
}
