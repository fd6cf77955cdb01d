package libdanwallet

import (
	"github.com/danlabs/danwallet/domain/engine/component"
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/keys"
	"github.com/danlabs/danwallet/domain/engine/substate"
	"github.com/danlabs/danwallet/domain/engine/transaction"
	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/danlabs/danwallet/infrastructure/logger"
)

// Workspace keys used by the transaction recipes
const (
	transferWorkspaceKey      = "bucket"
	freeTestCoinsWorkspaceKey = "free_test_coins"
)

// TransferParams describes a transfer of a fungible resource between two
// accounts.
type TransferParams struct {
	SourceSecretKey          string
	DestinationPublicKey     string
	CreateDestinationAccount bool
	ResourceAddress          string
	Amount                   types.Amount
	Fee                      types.Amount
}

// FreeTestCoinsParams describes a request for test funds
type FreeTestCoinsParams struct {
	IsNewAccount     bool
	AccountSecretKey string
	Amount           types.Amount
	Fee              types.Amount
}

// CreateTransaction signs the given instructions as fee instructions, with
// the given input refs.
func CreateTransaction(secretKeyHex string, instructions []transaction.Instruction,
	inputRefs []types.ShardID) (*transaction.Transaction, error) {

	secretKey, err := keys.SecretKeyFromHex(secretKeyHex)
	if err != nil {
		return nil, err
	}

	return transaction.NewBuilder().
		WithFeeInstructions(instructions).
		WithInputRefs(inputRefs).
		Sign(secretKey).
		Build()
}

// CreateTransferTransaction builds and signs a transaction that withdraws
// params.Amount of a resource from the source account, deposits it into the
// destination account, and pays params.Fee from the source account.
func CreateTransferTransaction(params *TransferParams) (*transaction.Transaction, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "CreateTransferTransaction")
	defer onEnd()

	err := validateAmounts(params.Amount, params.Fee)
	if err != nil {
		return nil, err
	}

	sourceSecretKey, sourceAccountAddress, err := accountOfSecretKey(params.SourceSecretKey)
	if err != nil {
		return nil, err
	}
	destinationPublicKey, err := keys.PublicKeyFromHex(params.DestinationPublicKey)
	if err != nil {
		return nil, err
	}
	destinationAccountAddress, err := component.AccountAddressFromPublicKey(params.DestinationPublicKey)
	if err != nil {
		return nil, err
	}
	resourceAddress, err := types.ResourceAddressFromString(params.ResourceAddress)
	if err != nil {
		return nil, err
	}

	instructions := []transaction.Instruction{
		transaction.NewCallMethod(sourceAccountAddress, "withdraw",
			transaction.Args(resourceAddress, params.Amount)),
		transaction.NewPutOnWorkspace(transferWorkspaceKey),
	}

	if params.CreateDestinationAccount {
		ownerToken := types.NonFungibleAddressFromPublicKey(destinationPublicKey.Bytes())
		instructions = append(instructions, transaction.NewCallFunction(component.AccountTemplateAddress, "create",
			transaction.Args(ownerToken)))
	}

	instructions = append(instructions,
		transaction.NewCallMethod(destinationAccountAddress, "deposit",
			transaction.Args(transaction.WorkspaceArg(transferWorkspaceKey))),
		transaction.NewCallMethod(sourceAccountAddress, "pay_fee",
			transaction.Args(params.Fee)),
	)

	resourceShardID := substate.NewResourceAddress(resourceAddress).ShardID(0)
	log.Debugf("Transfer of %s %s from %s to %s", params.Amount, resourceAddress,
		sourceAccountAddress, destinationAccountAddress)

	return transaction.NewBuilder().
		WithFeeInstructions(instructions).
		WithInputRefs([]types.ShardID{resourceShardID}).
		Sign(sourceSecretKey).
		Build()
}

// CreateFreeTestCoinsTransaction builds and signs a transaction that mints
// params.Amount of test coins into the account of params.AccountSecretKey,
// creating the account first when params.IsNewAccount is set.
func CreateFreeTestCoinsTransaction(params *FreeTestCoinsParams) (*transaction.Transaction, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "CreateFreeTestCoinsTransaction")
	defer onEnd()

	err := validateAmounts(params.Amount, params.Fee)
	if err != nil {
		return nil, err
	}

	secretKey, accountAddress, err := accountOfSecretKey(params.AccountSecretKey)
	if err != nil {
		return nil, err
	}

	instructions := []transaction.Instruction{
		transaction.NewCreateFreeTestCoins(params.Amount),
		transaction.NewPutOnWorkspace(freeTestCoinsWorkspaceKey),
	}

	if params.IsNewAccount {
		publicKey, err := secretKey.PublicKey()
		if err != nil {
			return nil, err
		}
		ownerToken := types.NonFungibleAddressFromPublicKey(publicKey.Bytes())
		instructions = append(instructions, transaction.NewCallFunction(component.AccountTemplateAddress,
			"create_with_bucket",
			transaction.Args(ownerToken, transaction.WorkspaceArg(freeTestCoinsWorkspaceKey))))
	} else {
		instructions = append(instructions, transaction.NewCallMethod(accountAddress, "deposit",
			transaction.Args(transaction.WorkspaceArg(freeTestCoinsWorkspaceKey))))
	}

	instructions = append(instructions,
		transaction.NewCallMethod(accountAddress, "pay_fee", transaction.Args(params.Fee)))

	return transaction.NewBuilder().
		WithFeeInstructions(instructions).
		Sign(secretKey).
		Build()
}

// VerifyTransaction checks the signature and id of a transaction
func VerifyTransaction(tx *transaction.Transaction) error {
	return tx.Verify()
}

func accountOfSecretKey(secretKeyHex string) (*keys.SecretKey, types.ComponentAddress, error) {
	secretKey, err := keys.SecretKeyFromHex(secretKeyHex)
	if err != nil {
		return nil, types.ComponentAddress{}, err
	}
	publicKey, err := secretKey.PublicKey()
	if err != nil {
		return nil, types.ComponentAddress{}, err
	}
	accountAddress, err := component.AccountAddressFromPublicKey(publicKey.String())
	if err != nil {
		return nil, types.ComponentAddress{}, err
	}
	return secretKey, accountAddress, nil
}

func validateAmounts(amount types.Amount, fee types.Amount) error {
	if amount.IsNegative() {
		return engineerrors.NewErrMalformedInput("amount %s is negative", amount)
	}
	if fee.IsNegative() {
		return engineerrors.NewErrMalformedInput("fee %s is negative", fee)
	}
	return nil
}
