package types

import (
	"encoding/hex"
	"strings"

	"github.com/danlabs/danwallet/domain/engine/engineerrors"
)

// Address string prefixes
const (
	ComponentAddressPrefix = "component_"
	ResourceAddressPrefix  = "resource_"
	VaultIDPrefix          = "vault_"
)

// TemplateAddress names a template, the kind of an on-network component
type TemplateAddress Hash

// TemplateAddressFromString parses a template address. An optional
// "template_" prefix is accepted.
func TemplateAddressFromString(s string) (TemplateAddress, error) {
	var address TemplateAddress
	err := decodeHex(address[:], strings.TrimPrefix(s, "template_"))
	return address, err
}

func (address TemplateAddress) String() string {
	return hex.EncodeToString(address[:])
}

// MarshalText implements encoding.TextMarshaler
func (address TemplateAddress) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (address *TemplateAddress) UnmarshalText(text []byte) error {
	parsed, err := TemplateAddressFromString(string(text))
	if err != nil {
		return err
	}
	*address = parsed
	return nil
}

// ComponentAddress is the address of a component instance
type ComponentAddress Hash

// NewComponentAddress wraps a hash as a ComponentAddress
func NewComponentAddress(hash Hash) ComponentAddress {
	return ComponentAddress(hash)
}

// ComponentAddressFromString parses a "component_<hex>" string
func ComponentAddressFromString(s string) (ComponentAddress, error) {
	var address ComponentAddress
	err := parsePrefixed(address[:], s, ComponentAddressPrefix)
	return address, err
}

// Hash returns the underlying hash of the address
func (address ComponentAddress) Hash() Hash {
	return Hash(address)
}

func (address ComponentAddress) String() string {
	return ComponentAddressPrefix + hex.EncodeToString(address[:])
}

// MarshalText implements encoding.TextMarshaler
func (address ComponentAddress) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (address *ComponentAddress) UnmarshalText(text []byte) error {
	parsed, err := ComponentAddressFromString(string(text))
	if err != nil {
		return err
	}
	*address = parsed
	return nil
}

// ResourceAddress is the address of a resource (a fungible or non-fungible token type)
type ResourceAddress Hash

// ResourceAddressFromString parses a "resource_<hex>" string
func ResourceAddressFromString(s string) (ResourceAddress, error) {
	var address ResourceAddress
	err := parsePrefixed(address[:], s, ResourceAddressPrefix)
	return address, err
}

func (address ResourceAddress) String() string {
	return ResourceAddressPrefix + hex.EncodeToString(address[:])
}

// MarshalText implements encoding.TextMarshaler
func (address ResourceAddress) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (address *ResourceAddress) UnmarshalText(text []byte) error {
	parsed, err := ResourceAddressFromString(string(text))
	if err != nil {
		return err
	}
	*address = parsed
	return nil
}

// VaultID identifies a vault held by a component
type VaultID Hash

// VaultIDFromString parses a "vault_<hex>" string
func VaultIDFromString(s string) (VaultID, error) {
	var id VaultID
	err := parsePrefixed(id[:], s, VaultIDPrefix)
	return id, err
}

func (id VaultID) String() string {
	return VaultIDPrefix + hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler
func (id VaultID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *VaultID) UnmarshalText(text []byte) error {
	parsed, err := VaultIDFromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func parsePrefixed(dst []byte, s string, prefix string) error {
	if !strings.HasPrefix(s, prefix) {
		return engineerrors.NewErrMalformedInput("address %q does not start with %q", s, prefix)
	}
	return decodeHex(dst, s[len(prefix):])
}
