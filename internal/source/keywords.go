package source

// Keywords holds the Symbol for every keyword and builtin identifier the
// lexer, parser and type checker need to compare against by identity rather
// than by string. They are interned once, at Session creation, giving them a
// stable, compile-time-known meaning for the lifetime of the process (spec
// §4.2: "a statically known prefix").
type Keywords struct {
	Pragma, Solidity, Abicoder, Experimental Symbol
	Import, As, From                         Symbol
	Using, For, Global                       Symbol
	Contract, Interface, Library, Is         Symbol
	Function, Modifier, Event, Error         Symbol
	Struct, Enum, Type                       Symbol
	Mapping, Constant, Immutable             Symbol
	Anonymous, Indexed, Override, Virtual    Symbol
	Public, Private, Internal, External      Symbol
	Pure, View, Payable, Nonpayable          Symbol
	Memory, Storage, Calldata                Symbol
	If, Else, While, Do                      Symbol
	Break, Continue, Return, Throw           Symbol
	Try, Catch, Revert, Emit                 Symbol
	Assembly, Let, Unchecked                 Symbol
	New, Delete, True, False                 Symbol
	Constructor, Fallback, Receive           Symbol

	Address, Bool, String, Bytes, Fixed, Ufixed, Int, Uint Symbol

	Msg, Tx, Block, Abi, This, Super Symbol
	Balance, Code, CodeHash          Symbol
	Call, Delegatecall, Staticcall   Symbol
	Transfer, Send, Length           Symbol
	Push, Pop, Push0                Symbol
	Min, Max                        Symbol
	CreationCode, RuntimeCode, Name, InterfaceID Symbol
	Value, Gas, Selector, Sender, Data, Sig      Symbol
}

// NewSessionInterner returns an Interner pre-seeded with every keyword and
// builtin symbol used by the front-end, plus the Keywords table of handles
// into it. Interning happens in a fixed order so repeated process runs always
// assign the same Symbol to the same keyword, even though nothing here is a
// literal compile-time constant (Go has no const-eval over map/slice state).
func NewSessionInterner() (*Interner, Keywords) {
	in := NewInterner()
	var kw Keywords
	kw.Pragma = in.Intern("pragma")
	kw.Solidity = in.Intern("solidity")
	kw.Abicoder = in.Intern("abicoder")
	kw.Experimental = in.Intern("experimental")
	kw.Import = in.Intern("import")
	kw.As = in.Intern("as")
	kw.From = in.Intern("from")
	kw.Using = in.Intern("using")
	kw.For = in.Intern("for")
	kw.Global = in.Intern("global")
	kw.Contract = in.Intern("contract")
	kw.Interface = in.Intern("interface")
	kw.Library = in.Intern("library")
	kw.Is = in.Intern("is")
	kw.Function = in.Intern("function")
	kw.Modifier = in.Intern("modifier")
	kw.Event = in.Intern("event")
	kw.Error = in.Intern("error")
	kw.Struct = in.Intern("struct")
	kw.Enum = in.Intern("enum")
	kw.Type = in.Intern("type")
	kw.Mapping = in.Intern("mapping")
	kw.Constant = in.Intern("constant")
	kw.Immutable = in.Intern("immutable")
	kw.Anonymous = in.Intern("anonymous")
	kw.Indexed = in.Intern("indexed")
	kw.Override = in.Intern("override")
	kw.Virtual = in.Intern("virtual")
	kw.Public = in.Intern("public")
	kw.Private = in.Intern("private")
	kw.Internal = in.Intern("internal")
	kw.External = in.Intern("external")
	kw.Pure = in.Intern("pure")
	kw.View = in.Intern("view")
	kw.Payable = in.Intern("payable")
	kw.Nonpayable = in.Intern("nonpayable")
	kw.Memory = in.Intern("memory")
	kw.Storage = in.Intern("storage")
	kw.Calldata = in.Intern("calldata")
	kw.If = in.Intern("if")
	kw.Else = in.Intern("else")
	kw.While = in.Intern("while")
	kw.Do = in.Intern("do")
	kw.Break = in.Intern("break")
	kw.Continue = in.Intern("continue")
	kw.Return = in.Intern("return")
	kw.Throw = in.Intern("throw")
	kw.Try = in.Intern("try")
	kw.Catch = in.Intern("catch")
	kw.Revert = in.Intern("revert")
	kw.Emit = in.Intern("emit")
	kw.Assembly = in.Intern("assembly")
	kw.Let = in.Intern("let")
	kw.Unchecked = in.Intern("unchecked")
	kw.New = in.Intern("new")
	kw.Delete = in.Intern("delete")
	kw.True = in.Intern("true")
	kw.False = in.Intern("false")
	kw.Constructor = in.Intern("constructor")
	kw.Fallback = in.Intern("fallback")
	kw.Receive = in.Intern("receive")

	kw.Address = in.Intern("address")
	kw.Bool = in.Intern("bool")
	kw.String = in.Intern("string")
	kw.Bytes = in.Intern("bytes")
	kw.Fixed = in.Intern("fixed")
	kw.Ufixed = in.Intern("ufixed")
	kw.Int = in.Intern("int")
	kw.Uint = in.Intern("uint")

	kw.Msg = in.Intern("msg")
	kw.Tx = in.Intern("tx")
	kw.Block = in.Intern("block")
	kw.Abi = in.Intern("abi")
	kw.This = in.Intern("this")
	kw.Super = in.Intern("super")
	kw.Balance = in.Intern("balance")
	kw.Code = in.Intern("code")
	kw.CodeHash = in.Intern("codehash")
	kw.Call = in.Intern("call")
	kw.Delegatecall = in.Intern("delegatecall")
	kw.Staticcall = in.Intern("staticcall")
	kw.Transfer = in.Intern("transfer")
	kw.Send = in.Intern("send")
	kw.Length = in.Intern("length")
	kw.Push = in.Intern("push")
	kw.Pop = in.Intern("pop")
	kw.Push0 = in.Intern("push0")
	kw.Min = in.Intern("min")
	kw.Max = in.Intern("max")
	kw.CreationCode = in.Intern("creationCode")
	kw.RuntimeCode = in.Intern("runtimeCode")
	kw.Name = in.Intern("name")
	kw.InterfaceID = in.Intern("interfaceId")
	kw.Value = in.Intern("value")
	kw.Gas = in.Intern("gas")
	kw.Selector = in.Intern("selector")
	kw.Sender = in.Intern("sender")
	kw.Data = in.Intern("data")
	kw.Sig = in.Intern("sig")
	return in, kw
}
