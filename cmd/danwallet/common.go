package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/danlabs/danwallet/cmd/danwallet/libdanwallet"
	"github.com/danlabs/danwallet/domain/engine/transaction"
	"github.com/danlabs/danwallet/infrastructure/config"
	"github.com/danlabs/danwallet/infrastructure/db/txstore"
	"github.com/danlabs/danwallet/version"
	"github.com/pkg/errors"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func printVersion() {
	fmt.Println(version.Version())
}

// resolveSecretKey returns the hex secret key selected by flags, prompting
// for it when it was not given on the command line.
func resolveSecretKey(flags *secretKeyFlags) (string, error) {
	if flags.Mnemonic {
		if flags.SecretKey != "" {
			return "", errors.New("--secret-key and --mnemonic cannot be used together")
		}
		mnemonic, err := getSecret("Mnemonic: ")
		if err != nil {
			return "", err
		}
		return libdanwallet.SecretKeyFromMnemonic(mnemonic, flags.AccountIndex)
	}
	if flags.SecretKey != "" {
		return flags.SecretKey, nil
	}
	return getSecret("Secret key (hex): ")
}

// readInput reads the whole of path, or of stdin when path is "-"
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return content, nil
}

func openStore(storeFlags *config.StoreFlags) (*txstore.Store, error) {
	storePath := storeFlags.ResolveStorePath()
	if storePath == "" {
		return nil, errors.New("the transaction store is disabled")
	}
	return txstore.Open(storePath)
}

// outputTransaction records tx in the transaction store, unless it is
// disabled, and prints its JSON form.
func outputTransaction(tx *transaction.Transaction, storeFlags *config.StoreFlags) error {
	if storeFlags.ResolveStorePath() != "" {
		store, err := openStore(storeFlags)
		if err != nil {
			return err
		}
		defer store.Close()

		err = store.Put(tx)
		if err != nil {
			return err
		}
		log.Infof("Recorded transaction %s in %s", tx.ID, storeFlags.ResolveStorePath())
	}

	serialized, err := libdanwallet.SerializeTransaction(tx)
	if err != nil {
		return err
	}
	fmt.Println(string(serialized))
	return nil
}
