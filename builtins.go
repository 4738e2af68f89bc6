// builtins.go — the fixed table of native functions.
//
// Builtins are resolved only after a name misses every environment frame,
// so user bindings shadow them. The table is closed: there is no
// registration API.
package monkey

import "fmt"

var builtins map[string]*Builtin

func init() {
	builtins = map[string]*Builtin{
		"len":   {Name: "len", Fn: builtinLen},
		"first": {Name: "first", Fn: builtinFirst},
		"last":  {Name: "last", Fn: builtinLast},
		"rest":  {Name: "rest", Fn: builtinRest},
		"push":  {Name: "push", Fn: builtinPush},
		"puts":  {Name: "puts", Fn: builtinPuts},
	}
}

func wrongArgCount(got, want int) Value {
	return Errorf("wrong number of arguments. got=%d, want=%d", got, want)
}

// len(x) — String length in bytes, or Array length.
func builtinLen(_ *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	switch args[0].Tag {
	case VTString:
		return IntVal(int64(len(args[0].Data.(string))))
	case VTArray:
		return IntVal(int64(len(args[0].Data.([]Value))))
	default:
		return Errorf("argument to `len` not supported, got %s", args[0].TypeName())
	}
}

// first(a) — first element, or null when empty.
func builtinFirst(_ *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	if args[0].Tag != VTArray {
		return Errorf("argument to `first` must be ARRAY, got %s", args[0].TypeName())
	}
	elems := args[0].Data.([]Value)
	if len(elems) == 0 {
		return Null
	}
	return elems[0]
}

// last(a) — last element, or null when empty.
func builtinLast(_ *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	if args[0].Tag != VTArray {
		return Errorf("argument to `last` must be ARRAY, got %s", args[0].TypeName())
	}
	elems := args[0].Data.([]Value)
	if len(elems) == 0 {
		return Null
	}
	return elems[len(elems)-1]
}

// rest(a) — a new array of everything but the first element, or null when
// empty. Arrays are immutable, so the elements are copied.
func builtinRest(_ *Interpreter, args []Value) Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	if args[0].Tag != VTArray {
		return Errorf("argument to `rest` must be ARRAY, got %s", args[0].TypeName())
	}
	elems := args[0].Data.([]Value)
	if len(elems) == 0 {
		return Null
	}
	rest := make([]Value, len(elems)-1)
	copy(rest, elems[1:])
	return ArrVal(rest)
}

// push(a, v) — a new array with v appended. The original is untouched.
func builtinPush(_ *Interpreter, args []Value) Value {
	if len(args) != 2 {
		return wrongArgCount(len(args), 2)
	}
	if args[0].Tag != VTArray {
		return Errorf("argument to `push` must be ARRAY, got %s", args[0].TypeName())
	}
	elems := args[0].Data.([]Value)
	out := make([]Value, len(elems), len(elems)+1)
	copy(out, elems)
	return ArrVal(append(out, args[1]))
}

// puts(...) — print each argument's display form on its own line.
func builtinPuts(ip *Interpreter, args []Value) Value {
	for _, arg := range args {
		fmt.Fprintln(ip.Out, FormatValue(arg))
	}
	return Null
}
