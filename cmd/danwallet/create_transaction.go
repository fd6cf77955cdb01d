package main

import (
	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
	"github.com/danlabs/danwallet/domain/engine/encoding"
	"github.com/danlabs/danwallet/domain/engine/transaction"
	"github.com/danlabs/danwallet/domain/engine/types"
)

func createTransaction(conf *createTransactionConfig) error {
	serializedInstructions, err := readInput(conf.InstructionsFile)
	if err != nil {
		return err
	}
	var instructions []transaction.Instruction
	err = encoding.DecodeJSON(serializedInstructions, &instructions)
	if err != nil {
		return err
	}

	inputRefs := make([]types.ShardID, len(conf.InputRefs))
	for i, inputRef := range conf.InputRefs {
		inputRefs[i], err = types.ShardIDFromString(inputRef)
		if err != nil {
			return err
		}
	}

	secretKey, err := resolveSecretKey(&conf.secretKeyFlags)
	if err != nil {
		return err
	}
	tx, err := libdanwallet.CreateTransaction(secretKey, instructions, inputRefs)
	if err != nil {
		return err
	}
	return outputTransaction(tx, &conf.StoreFlags)
}
