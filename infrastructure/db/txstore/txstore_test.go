package txstore

import (
	"path/filepath"
	"testing"

	"github.com/danlabs/danwallet/domain/engine/keys"
	"github.com/danlabs/danwallet/domain/engine/transaction"
	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/pkg/errors"
)

func prepareStoreForTest(t *testing.T) (store *Store, teardownFunc func()) {
	path := filepath.Join(t.TempDir(), "txstore")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %+v", err)
	}
	teardownFunc = func() {
		err := store.Close()
		if err != nil {
			t.Fatalf("Close: %+v", err)
		}
	}
	return store, teardownFunc
}

func buildTransaction(t *testing.T, message string) *transaction.Transaction {
	secretKey, err := keys.GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey: %+v", err)
	}
	tx, err := transaction.NewBuilder().
		AddFeeInstruction(transaction.NewEmitLog(transaction.LogLevelInfo, message)).
		Sign(secretKey).
		Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}
	return tx
}

func TestStorePutGet(t *testing.T) {
	store, teardownFunc := prepareStoreForTest(t)
	defer teardownFunc()

	tx := buildTransaction(t, "first")
	has, err := store.Has(tx.ID)
	if err != nil {
		t.Fatalf("Has: %+v", err)
	}
	if has {
		t.Fatalf("an empty store should not have transaction %s", tx.ID)
	}

	err = store.Put(tx)
	if err != nil {
		t.Fatalf("Put: %+v", err)
	}
	has, err = store.Has(tx.ID)
	if err != nil {
		t.Fatalf("Has: %+v", err)
	}
	if !has {
		t.Fatalf("expected transaction %s to be stored", tx.ID)
	}

	stored, err := store.Get(tx.ID)
	if err != nil {
		t.Fatalf("Get: %+v", err)
	}
	if stored.ID != tx.ID {
		t.Fatalf("expected id %s, got %s", tx.ID, stored.ID)
	}
	err = stored.Verify()
	if err != nil {
		t.Fatalf("Verify: %+v", err)
	}

	err = store.Delete(tx.ID)
	if err != nil {
		t.Fatalf("Delete: %+v", err)
	}
	_, err = store.Get(tx.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store, teardownFunc := prepareStoreForTest(t)
	defer teardownFunc()

	_, err := store.Get(types.Hash{0xff})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreList(t *testing.T) {
	store, teardownFunc := prepareStoreForTest(t)
	defer teardownFunc()

	expected := make(map[types.Hash]bool)
	for _, message := range []string{"a", "b", "c"} {
		tx := buildTransaction(t, message)
		err := store.Put(tx)
		if err != nil {
			t.Fatalf("Put: %+v", err)
		}
		expected[tx.ID] = true
	}

	transactions, err := store.List()
	if err != nil {
		t.Fatalf("List: %+v", err)
	}
	if len(transactions) != len(expected) {
		t.Fatalf("expected %d transactions, got %d", len(expected), len(transactions))
	}
	for i, tx := range transactions {
		if !expected[tx.ID] {
			t.Fatalf("unexpected transaction %s", tx.ID)
		}
		if i > 0 && transactions[i-1].ID.String() >= tx.ID.String() {
			t.Fatalf("transactions are not ordered by id")
		}
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txstore")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %+v", err)
	}
	tx := buildTransaction(t, "persisted")
	err = store.Put(tx)
	if err != nil {
		t.Fatalf("Put: %+v", err)
	}
	err = store.Close()
	if err != nil {
		t.Fatalf("Close: %+v", err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("Open: %+v", err)
	}
	defer store.Close()
	has, err := store.Has(tx.ID)
	if err != nil {
		t.Fatalf("Has: %+v", err)
	}
	if !has {
		t.Fatalf("transaction %s was lost after reopening the store", tx.ID)
	}
}
