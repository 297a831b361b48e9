// Copyright 2026 Movers HQ
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"

	"github.com/movershq/sui/bcs"
)

// transactionDigestPrefix domain-separates transaction digests from other
// uses of the hash over the same bytes.
const transactionDigestPrefix = "TransactionData::"

// TransferObject moves ownership of an object to a recipient.
type TransferObject struct {
	Recipient Address
	ObjectRef ObjectRef
}

// Value returns the kind as a codec value for the TransactionKind schema.
func (t TransferObject) Value() bcs.Value {
	return bcs.EnumValue{
		Variant: KindTransferObject,
		Value: bcs.StructValue{
			"recipient": t.Recipient.Value(),
			"objectRef": t.ObjectRef.Value(),
		},
	}
}

// Publish uploads compiled module bytecode.
type Publish struct {
	Modules [][]byte
}

func (p Publish) Value() bcs.Value {
	modules := make([]bcs.Value, 0, len(p.Modules))
	for _, module := range p.Modules {
		moduleBytes := make([]bcs.Value, 0, len(module))
		for _, b := range module {
			moduleBytes = append(moduleBytes, b)
		}
		modules = append(modules, moduleBytes)
	}
	return bcs.EnumValue{
		Variant: KindPublish,
		Value: bcs.StructValue{
			"modules": modules,
		},
	}
}

// MoveCall invokes an entry function in a published module.
type MoveCall struct {
	Package       ObjectRef
	Module        string
	Function      string
	TypeArguments []bcs.Value // TypeTag values, see UnitTypeTag and friends
	Arguments     [][]byte    // each argument is pre-serialized bytes
}

func (m MoveCall) Value() bcs.Value {
	typeArgs := make([]bcs.Value, 0, len(m.TypeArguments))
	typeArgs = append(typeArgs, m.TypeArguments...)
	args := make([]bcs.Value, 0, len(m.Arguments))
	for _, arg := range m.Arguments {
		argBytes := make([]bcs.Value, 0, len(arg))
		for _, b := range arg {
			argBytes = append(argBytes, b)
		}
		args = append(args, argBytes)
	}
	return bcs.EnumValue{
		Variant: KindMoveCall,
		Value: bcs.StructValue{
			"package":       m.Package.Value(),
			"module":        m.Module,
			"function":      m.Function,
			"typeArguments": typeArgs,
			"arguments":     args,
		},
	}
}

// TransactionData is the signable payload of a single transaction. Kind is
// a TransactionKind codec value, typically built via TransferObject,
// Publish, or MoveCall.
type TransactionData struct {
	Kind       bcs.Value
	Sender     Address
	GasPayment ObjectRef
	GasPrice   uint64
	GasBudget  uint64
}

// Value returns the transaction as a codec value for the TransactionData
// schema.
func (d TransactionData) Value() bcs.Value {
	return bcs.StructValue{
		"kind":       d.Kind,
		"sender":     d.Sender.Value(),
		"gasPayment": d.GasPayment.Value(),
		"gasPrice":   d.GasPrice,
		"gasBudget":  d.GasBudget,
	}
}

// Encode serializes the transaction to its canonical bytes, the exact bytes
// a signer consumes.
func (d TransactionData) Encode() ([]byte, error) {
	return bcs.Encode(d.Value(), bcs.Ref(TypeNameTransactionData))
}

// Digest returns the transaction digest: a domain-prefixed Blake2b-256 hash
// of the canonical encoding.
func (d TransactionData) Digest() (Digest, error) {
	encoded, err := d.Encode()
	if err != nil {
		return Digest{}, err
	}
	hashInput := make([]byte, 0, len(transactionDigestPrefix)+len(encoded))
	hashInput = append(hashInput, transactionDigestPrefix...)
	hashInput = append(hashInput, encoded...)
	return Digest(Blake2b256Hash(hashInput)), nil
}

// ParseTransactionData strictly decodes canonical transaction bytes.
func ParseTransactionData(data []byte) (*TransactionData, error) {
	decoded, err := bcs.Decode(data, bcs.Ref(TypeNameTransactionData))
	if err != nil {
		return nil, err
	}
	sv, ok := decoded.(bcs.StructValue)
	if !ok {
		return nil, fmt.Errorf("transaction data decoded to %T, expected struct", decoded)
	}
	ret := &TransactionData{
		Kind: sv["kind"],
	}
	if ret.Sender, err = addressFromValue(sv["sender"]); err != nil {
		return nil, fmt.Errorf("parse sender: %w", err)
	}
	if ret.GasPayment, err = objectRefFromValue(sv["gasPayment"]); err != nil {
		return nil, fmt.Errorf("parse gas payment: %w", err)
	}
	gasPrice, ok := sv["gasPrice"].(uint64)
	if !ok {
		return nil, fmt.Errorf("transaction data has invalid gasPrice field")
	}
	ret.GasPrice = gasPrice
	gasBudget, ok := sv["gasBudget"].(uint64)
	if !ok {
		return nil, fmt.Errorf("transaction data has invalid gasBudget field")
	}
	ret.GasBudget = gasBudget
	return ret, nil
}
