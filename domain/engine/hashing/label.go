package hashing

import (
	"fmt"
)

// Label is the per purpose suffix of an engine hash domain tag. Two hashers
// with different labels never produce the same digest for the same input.
type Label uint8

// The closed set of engine hashing labels. Values are stable and must not be
// reordered.
const (
	LabelTemplate Label = iota
	LabelShardID
	LabelConfidentialProof
	LabelConfidentialTransfer
	LabelShardPledgeCollection
	LabelHotStuffTreeNode
	LabelTransaction
	LabelNonFungibleID
	LabelNonFungibleIndex
	LabelUUIDOutput
	LabelOutput
	LabelTransactionSignature
	LabelResourceAddress
	LabelComponentAddress
	LabelRandomBytes
	LabelTransactionReceipt
	LabelFeeClaimAddress
	LabelQuorumCertificate
	LabelInstructionSignature
	LabelWalletKeyDerivation

	numLabels
)

// AsLabel returns the tag string of the label. It panics for values outside
// the registry.
func (label Label) AsLabel() string {
	switch label {
	case LabelTemplate:
		return "Template"
	case LabelShardID:
		return "ShardId"
	case LabelConfidentialProof:
		return "ConfidentialProof"
	case LabelConfidentialTransfer:
		return "ConfidentialTransfer"
	case LabelShardPledgeCollection:
		return "ShardPledgeCollection"
	case LabelHotStuffTreeNode:
		return "HotStuffTreeNode"
	case LabelTransaction:
		return "Transaction"
	case LabelNonFungibleID:
		return "NonFungibleId"
	case LabelNonFungibleIndex:
		return "NonFungibleIndex"
	case LabelUUIDOutput:
		return "UuidOutput"
	case LabelOutput:
		return "Output"
	case LabelTransactionSignature:
		return "TransactionSignature"
	case LabelResourceAddress:
		return "ResourceAddress"
	case LabelComponentAddress:
		return "ComponentAddress"
	case LabelRandomBytes:
		return "RandomBytes"
	case LabelTransactionReceipt:
		return "TransactionReceipt"
	case LabelFeeClaimAddress:
		return "FeeClaimAddress"
	case LabelQuorumCertificate:
		return "QuorumCertificate"
	case LabelInstructionSignature:
		return "InstructionSignature"
	case LabelWalletKeyDerivation:
		return "WalletKeyDerivation"
	}
	panic(fmt.Sprintf("unknown hashing label %d", uint8(label)))
}

// IsValid returns true if the label is part of the registry
func (label Label) IsValid() bool {
	return label < numLabels
}

func (label Label) String() string {
	if !label.IsValid() {
		return fmt.Sprintf("Label(%d)", uint8(label))
	}
	return label.AsLabel()
}

// AllLabels returns every registered label in registry order
func AllLabels() []Label {
	labels := make([]Label, 0, numLabels)
	for label := Label(0); label < numLabels; label++ {
		labels = append(labels, label)
	}
	return labels
}
