package monkey

import "testing"

func Test_Object_TypeNames(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{IntVal(1), "INTEGER"},
		{True, "BOOLEAN"},
		{StrVal("x"), "STRING"},
		{Null, "NULL"},
		{ReturnVal(IntVal(1)), "RETURN_VALUE"},
		{ErrVal("boom"), "ERROR"},
		{FnVal(&Function{}), "FUNCTION"},
		{Value{Tag: VTBuiltin, Data: builtins["len"]}, "BUILTIN"},
		{ArrVal(nil), "ARRAY"},
		{HashVal(), "HASH"},
	}
	for _, tc := range cases {
		if got := tc.v.TypeName(); got != tc.want {
			t.Fatalf("want %s, got %s", tc.want, got)
		}
	}
}

func Test_Object_StringHashKeys(t *testing.T) {
	hello1, _ := HashKeyOf(StrVal("Hello World"))
	hello2, _ := HashKeyOf(StrVal("Hello World"))
	diff1, _ := HashKeyOf(StrVal("My name is johnny"))
	diff2, _ := HashKeyOf(StrVal("My name is johnny"))

	if hello1 != hello2 {
		t.Fatalf("strings with same content have different hash keys")
	}
	if diff1 != diff2 {
		t.Fatalf("strings with same content have different hash keys")
	}
	if hello1 == diff1 {
		t.Fatalf("strings with different content have same hash keys")
	}
}

func Test_Object_HashKeysAcrossTypes(t *testing.T) {
	// 1 and true, and 0 and false, must be distinct keys even though their
	// sums collide.
	intKey, _ := HashKeyOf(IntVal(1))
	boolKey, _ := HashKeyOf(True)
	if intKey == boolKey {
		t.Fatalf("INTEGER 1 and BOOLEAN true must not collide")
	}

	falseKey, _ := HashKeyOf(False)
	zeroKey, _ := HashKeyOf(IntVal(0))
	if falseKey == zeroKey {
		t.Fatalf("BOOLEAN false and INTEGER 0 must not collide")
	}
}

func Test_Object_UnhashableKinds(t *testing.T) {
	for _, v := range []Value{Null, ArrVal(nil), HashVal(), FnVal(&Function{}), ErrVal("x")} {
		if _, ok := HashKeyOf(v); ok {
			t.Fatalf("%s must not be hashable", v.TypeName())
		}
	}
}

func Test_Object_BooleanSingletons(t *testing.T) {
	if BoolVal(true) != True || BoolVal(false) != False {
		t.Fatalf("BoolVal must return the canonical singletons")
	}
}

func Test_Object_Truthiness(t *testing.T) {
	falsy := []Value{Null, False}
	truthy := []Value{True, IntVal(0), IntVal(1), StrVal(""), ArrVal(nil), HashVal()}

	for _, v := range falsy {
		if IsTruthy(v) {
			t.Fatalf("%s should be falsy", FormatValue(v))
		}
	}
	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Fatalf("%s should be truthy", FormatValue(v))
		}
	}
}

func Test_Env_ShadowingAndLookup(t *testing.T) {
	outer := NewEnv()
	outer.Define("a", IntVal(1))
	outer.Define("b", IntVal(2))

	inner := NewEnclosedEnv(outer)
	inner.Define("a", IntVal(10))

	if v, ok := inner.Get("a"); !ok || v.Data.(int64) != 10 {
		t.Fatalf("inner lookup should see the shadow")
	}
	if v, ok := inner.Get("b"); !ok || v.Data.(int64) != 2 {
		t.Fatalf("inner lookup should walk outward")
	}
	if v, ok := outer.Get("a"); !ok || v.Data.(int64) != 1 {
		t.Fatalf("outer binding must be untouched by the shadow")
	}
	if _, ok := outer.Get("missing"); ok {
		t.Fatalf("missing name should not resolve")
	}
}
