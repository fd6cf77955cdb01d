package main

import (
	"fmt"
)

func list(conf *listConfig) error {
	store, err := openStore(&conf.StoreFlags)
	if err != nil {
		return err
	}
	defer store.Close()

	transactions, err := store.List()
	if err != nil {
		return err
	}
	for _, tx := range transactions {
		fmt.Printf("%s\tsigner %s\t%d fee instructions\t%d instructions\n",
			tx.ID, tx.Signature.PublicKey, len(tx.FeeInstructions), len(tx.Instructions))
	}
	fmt.Printf("%d transactions\n", len(transactions))
	return nil
}
