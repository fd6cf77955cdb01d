package libdanwallet

import (
	"github.com/danlabs/danwallet/domain/engine/encoding"
	"github.com/danlabs/danwallet/domain/engine/transaction"
)

// SerializeTransaction returns the JSON form of a transaction, as handed to
// a host environment.
func SerializeTransaction(tx *transaction.Transaction) ([]byte, error) {
	return encoding.EncodeJSON(tx)
}

// DeserializeTransaction parses the JSON form of a transaction. The result is
// not verified, use VerifyTransaction for that.
func DeserializeTransaction(serializedTransaction []byte) (*transaction.Transaction, error) {
	tx := &transaction.Transaction{}
	err := encoding.DecodeJSON(serializedTransaction, tx)
	if err != nil {
		return nil, err
	}
	tx.Normalize()
	return tx, nil
}

// SerializeTransactionBinary returns the canonical binary form of a
// transaction.
func SerializeTransactionBinary(tx *transaction.Transaction) ([]byte, error) {
	return encoding.EncodeToBytes(tx)
}

// DeserializeTransactionBinary parses the canonical binary form of a
// transaction.
func DeserializeTransactionBinary(serializedTransaction []byte) (*transaction.Transaction, error) {
	tx := &transaction.Transaction{}
	err := encoding.Decode(serializedTransaction, tx)
	if err != nil {
		return nil, err
	}
	tx.Normalize()
	return tx, nil
}
