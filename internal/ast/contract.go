package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// InheritSpec is one entry of a contract's `is A, B(args)` inheritance list.
// Args is non-nil only for the specifier that supplies constructor arguments
// inline (at most one, per Solidity's rules); linearization consumes Path.
type InheritSpec struct {
	Path []source.Symbol
	Args []ExprID
	Span source.Span
}

// ContractDecl is the payload for an ItemContract.
type ContractDecl struct {
	Name       source.Symbol
	NameSpan   source.Span
	Kind       ContractKind
	Inherits   []InheritSpec
	ItemsStart ContractItemID
	ItemsCount uint32
	BodySpan   source.Span
	Span       source.Span
}

// ContractItem wraps one declaration nested in a contract body, tagging it
// with the ItemKind so a walker can dispatch without re-deriving it from the
// wrapped ItemID.
type ContractItem struct {
	Kind ItemKind
	Item ItemID
	Span source.Span
}

// Contract returns the ContractDecl for id, or nil/false if id is not a contract.
func (i *Items) Contract(id ItemID) (*ContractDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemContract {
		return nil, false
	}
	return i.Contracts.Get(uint32(item.Payload)), true
}

// ContractItems collects the body declarations of decl, in source order.
func (i *Items) ContractItems(decl *ContractDecl) []ContractItem {
	if decl.ItemsCount == 0 || !decl.ItemsStart.IsValid() {
		return nil
	}
	out := make([]ContractItem, 0, decl.ItemsCount)
	base := uint32(decl.ItemsStart)
	for offset := range decl.ItemsCount {
		out = append(out, *i.ContractItemsArena.Get(base+offset))
	}
	return out
}

// NewContract allocates a contract/interface/library/abstract-contract item.
func (i *Items) NewContract(
	name source.Symbol,
	nameSpan source.Span,
	kind ContractKind,
	inherits []InheritSpec,
	items []ContractItem,
	bodySpan source.Span,
	span source.Span,
) ItemID {
	var itemsStart ContractItemID
	itemCount, err := safecast.Conv[uint32](len(items))
	if err != nil {
		panic(fmt.Errorf("contract item count overflow: %w", err))
	}
	if itemCount > 0 {
		for idx, it := range items {
			id := ContractItemID(i.ContractItemsArena.Allocate(it))
			if idx == 0 {
				itemsStart = id
			}
		}
	}
	payload := PayloadID(i.Contracts.Allocate(ContractDecl{
		Name:       name,
		NameSpan:   nameSpan,
		Kind:       kind,
		Inherits:   append([]InheritSpec(nil), inherits...),
		ItemsStart: itemsStart,
		ItemsCount: itemCount,
		BodySpan:   bodySpan,
		Span:       span,
	}))
	return i.New(ItemContract, span, payload)
}
