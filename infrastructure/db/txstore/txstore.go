package txstore

import (
	"github.com/danlabs/danwallet/domain/engine/encoding"
	"github.com/danlabs/danwallet/domain/engine/transaction"
	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// ErrNotFound denotes that the requested transaction was not found in the store.
var ErrNotFound = errors.New("transaction not found")

var transactionsPrefix = []byte("transactions/")

func transactionKey(id types.Hash) []byte {
	key := make([]byte, 0, len(transactionsPrefix)+types.HashSize)
	key = append(key, transactionsPrefix...)
	return append(key, id[:]...)
}

func storeOptions() *opt.Options {
	return &opt.Options{
		Compression:        opt.NoCompression,
		BlockCacheCapacity: 8 * opt.MiB,
		WriteBuffer:        4 * opt.MiB,
	}
}

// Store is a leveldb backed store of built transactions, keyed by
// transaction id. Values are the canonical binary form of the transaction.
type Store struct {
	ldb *leveldb.DB
}

// Open opens the store at the given path, creating it if it doesn't exist.
func Open(path string) (*Store, error) {
	ldb, err := leveldb.OpenFile(path, storeOptions())

	// If the store is corrupted, attempt to recover.
	var corrupted *ldbErrors.ErrCorrupted
	if errors.As(err, &corrupted) {
		log.Warnf("Transaction store corruption detected for path %s: %s", path, err)
		ldb, err = leveldb.RecoverFile(path, storeOptions())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to recover transaction store at %s", path)
		}
		log.Warnf("Transaction store recovered from corruption for path %s", path)
	}

	// If the store cannot be opened for any other
	// reason, return the error as-is.
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open transaction store at %s", path)
	}

	return &Store{ldb: ldb}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.ldb.Close()
}

// Put stores the given transaction. It overwrites any transaction stored
// under the same id.
func (s *Store) Put(tx *transaction.Transaction) error {
	serialized, err := encoding.EncodeToBytes(tx)
	if err != nil {
		return err
	}
	err = s.ldb.Put(transactionKey(tx.ID), serialized, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	log.Debugf("Stored transaction %s", tx.ID)
	return nil
}

// Get returns the transaction with the given id. It returns ErrNotFound if
// no such transaction was stored.
func (s *Store) Get(id types.Hash) (*transaction.Transaction, error) {
	serialized, err := s.ldb.Get(transactionKey(id), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "transaction %s", id)
		}
		return nil, errors.WithStack(err)
	}
	return deserialize(serialized)
}

// Has returns true if a transaction with the given id was stored.
func (s *Store) Has(id types.Hash) (bool, error) {
	has, err := s.ldb.Has(transactionKey(id), nil)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return has, nil
}

// Delete removes the transaction with the given id. Deleting a missing
// transaction is not an error.
func (s *Store) Delete(id types.Hash) error {
	return errors.WithStack(s.ldb.Delete(transactionKey(id), nil))
}

// List returns every stored transaction, ordered by id.
func (s *Store) List() ([]*transaction.Transaction, error) {
	iterator := s.ldb.NewIterator(util.BytesPrefix(transactionsPrefix), nil)
	defer iterator.Release()

	transactions := make([]*transaction.Transaction, 0)
	for iterator.Next() {
		tx, err := deserialize(iterator.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "corrupted entry %x", iterator.Key())
		}
		transactions = append(transactions, tx)
	}
	err := iterator.Error()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return transactions, nil
}

func deserialize(serialized []byte) (*transaction.Transaction, error) {
	tx := &transaction.Transaction{}
	err := encoding.Decode(serialized, tx)
	if err != nil {
		return nil, err
	}
	tx.Normalize()
	return tx, nil
}
