package monkey

import (
	"testing"

	"github.com/oarkflow/json"
)

func Test_MarshalAST_Shape(t *testing.T) {
	program := parseProgram(t, `let add = fn(x, y) { x + y; }; add(1, 2);`)

	data, err := MarshalAST(program)
	if err != nil {
		t.Fatalf("MarshalAST: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["type"] != "Program" {
		t.Fatalf("root type: got %v", doc["type"])
	}

	stmts, ok := doc["statements"].([]any)
	if !ok || len(stmts) != 2 {
		t.Fatalf("want 2 statements, got %v", doc["statements"])
	}

	let := stmts[0].(map[string]any)
	if let["type"] != "LetStatement" || let["name"] != "add" {
		t.Fatalf("first statement: got %v", let)
	}
	fn := let["value"].(map[string]any)
	if fn["type"] != "FunctionLiteral" {
		t.Fatalf("let value: got %v", fn)
	}
	params := fn["parameters"].([]any)
	if len(params) != 2 || params[0] != "x" || params[1] != "y" {
		t.Fatalf("parameters: got %v", params)
	}

	call := stmts[1].(map[string]any)["expression"].(map[string]any)
	if call["type"] != "CallExpression" {
		t.Fatalf("second statement: got %v", call)
	}
	if len(call["arguments"].([]any)) != 2 {
		t.Fatalf("arguments: got %v", call["arguments"])
	}
}
