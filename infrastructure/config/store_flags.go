package config

import (
	"path/filepath"
)

const defaultStoreDirname = "transactions"

// StoreFlags holds the configuration of the local transaction store.
type StoreFlags struct {
	StorePath string `long:"store" description:"Directory of the local transaction store"`
	NoStore   bool   `long:"nostore" description:"Do not record built transactions"`
}

// ResolveStorePath returns the store directory to use, or "" when the store
// is disabled.
func (storeFlags *StoreFlags) ResolveStorePath() string {
	if storeFlags.NoStore {
		return ""
	}
	if storeFlags.StorePath == "" {
		return filepath.Join(DefaultAppDir(), defaultStoreDirname)
	}
	return storeFlags.StorePath
}

// CombineStoreFlags fills the unset fields of dst from src
func CombineStoreFlags(dst, src *StoreFlags) {
	if dst.StorePath == "" {
		dst.StorePath = src.StorePath
	}
	dst.NoStore = dst.NoStore || src.NoStore
}
