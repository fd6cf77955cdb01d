package main

import (
	"fmt"

	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
)

func showAddress(conf *showAddressConfig) error {
	accountAddress, err := libdanwallet.GetAccountComponentAddress(conf.PublicKey)
	if err != nil {
		return err
	}
	accountNFTAddress, err := libdanwallet.GetAccountNFTComponentAddress(conf.PublicKey)
	if err != nil {
		return err
	}
	fmt.Printf("Account:\t%s\n", accountAddress)
	fmt.Printf("Account NFT:\t%s\n", accountNFTAddress)
	return nil
}
