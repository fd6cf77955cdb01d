package component

import (
	"strings"
	"testing"

	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/pkg/errors"
)

const testPublicKey = "8e5fca3e8b6d2ac3c2f8cc6b36eac9b5e1f8a5f4e4ac0c6f3d0e7f2a1b3c4d5e"

func TestAccountAddressFromPublicKey(t *testing.T) {
	address, err := AccountAddressFromPublicKey(testPublicKey)
	if err != nil {
		t.Fatalf("AccountAddressFromPublicKey: %+v", err)
	}
	expected := "component_f83326da2e98f22c0b2f83f5c5383e696ebe5ba6b46b1f0b7298b8b25dc769be"
	if address.String() != expected {
		t.Fatalf("expected %s, got %s", expected, address)
	}
}

func TestAccountNFTAddressFromPublicKey(t *testing.T) {
	address, err := AccountNFTAddressFromPublicKey(testPublicKey)
	if err != nil {
		t.Fatalf("AccountNFTAddressFromPublicKey: %+v", err)
	}
	expected := "component_1be638b2e7b951dc5ee60f17523a4012e25e9a41aa87ab5939ce4094420f04f0"
	if address.String() != expected {
		t.Fatalf("expected %s, got %s", expected, address)
	}
}

func TestAddressFromPublicKeyIsDeterministic(t *testing.T) {
	first, err := AccountAddressFromPublicKey(testPublicKey)
	if err != nil {
		t.Fatalf("AccountAddressFromPublicKey: %+v", err)
	}
	second, err := AccountAddressFromPublicKey(testPublicKey)
	if err != nil {
		t.Fatalf("AccountAddressFromPublicKey: %+v", err)
	}
	if first != second {
		t.Fatalf("derivation is not deterministic: %s != %s", first, second)
	}

	nft, err := AccountNFTAddressFromPublicKey(testPublicKey)
	if err != nil {
		t.Fatalf("AccountNFTAddressFromPublicKey: %+v", err)
	}
	if nft == first {
		t.Fatalf("account and account NFT addresses must differ")
	}
}

func TestAddressFromMalformedPublicKey(t *testing.T) {
	malformed := []string{
		"",
		testPublicKey[:62],
		testPublicKey + "00",
		strings.Repeat("x", 64),
		"component_" + testPublicKey,
	}
	for _, input := range malformed {
		_, err := AccountAddressFromPublicKey(input)
		if !errors.Is(err, engineerrors.ErrMalformedInput) {
			t.Fatalf("AccountAddressFromPublicKey(%q): expected ErrMalformedInput, got %v", input, err)
		}
		_, err = AccountNFTAddressFromPublicKey(input)
		if !errors.Is(err, engineerrors.ErrMalformedInput) {
			t.Fatalf("AccountNFTAddressFromPublicKey(%q): expected ErrMalformedInput, got %v", input, err)
		}
	}
}

func TestNewComponentAddressFromParts(t *testing.T) {
	componentID, err := types.HashFromHex(testPublicKey)
	if err != nil {
		t.Fatalf("HashFromHex: %+v", err)
	}
	fromParts := NewComponentAddressFromParts(AccountTemplateAddress, componentID)
	fromKey, err := AccountAddressFromPublicKey(testPublicKey)
	if err != nil {
		t.Fatalf("AccountAddressFromPublicKey: %+v", err)
	}
	if fromParts != fromKey {
		t.Fatalf("expected %s, got %s", fromKey, fromParts)
	}

	var otherTemplate types.TemplateAddress
	otherTemplate[0] = 0xff
	if NewComponentAddressFromParts(otherTemplate, componentID) == fromParts {
		t.Fatalf("template address must affect the component address")
	}
}

func TestWellKnownTemplates(t *testing.T) {
	templates := WellKnownTemplates()
	if len(templates) != 2 {
		t.Fatalf("expected 2 well known templates, got %d", len(templates))
	}
	if templates[0].Address != AccountTemplateAddress || !types.Hash(templates[0].Address).IsZero() {
		t.Fatalf("unexpected account template %s", templates[0].Address)
	}
	if templates[1].Address[31] != 1 {
		t.Fatalf("unexpected account NFT template %s", templates[1].Address)
	}
}
