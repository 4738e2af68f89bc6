// astjson.go — JSON projection of the AST for tooling.
//
// `monk ast` and fixture-style tests use this to inspect parser output
// without walking Go structs. Each node becomes an object with a "type"
// tag and named children; the projection is one-way (the parser is the
// only producer of AST nodes).
package monkey

import "github.com/oarkflow/json"

// MarshalAST renders a parsed program as indented JSON.
func MarshalAST(program *Program) ([]byte, error) {
	return json.MarshalIndent(astNode(program), "", "  ")
}

func astNode(node Node) map[string]any {
	switch node := node.(type) {
	case *Program:
		return map[string]any{"type": "Program", "statements": astStatements(node.Statements)}
	case *LetStatement:
		return map[string]any{
			"type":  "LetStatement",
			"name":  node.Name.Value,
			"value": astNode(node.Value),
		}
	case *ReturnStatement:
		return map[string]any{"type": "ReturnStatement", "value": astNode(node.Value)}
	case *ExpressionStatement:
		return map[string]any{"type": "ExpressionStatement", "expression": astNode(node.Expression)}
	case *BlockStatement:
		return map[string]any{"type": "BlockStatement", "statements": astStatements(node.Statements)}
	case *Identifier:
		return map[string]any{"type": "Identifier", "name": node.Value}
	case *IntegerLiteral:
		return map[string]any{"type": "IntegerLiteral", "value": node.Value}
	case *BooleanLiteral:
		return map[string]any{"type": "BooleanLiteral", "value": node.Value}
	case *StringLiteral:
		return map[string]any{"type": "StringLiteral", "value": node.Value}
	case *PrefixExpression:
		return map[string]any{
			"type":     "PrefixExpression",
			"operator": node.Operator,
			"right":    astNode(node.Right),
		}
	case *InfixExpression:
		return map[string]any{
			"type":     "InfixExpression",
			"operator": node.Operator,
			"left":     astNode(node.Left),
			"right":    astNode(node.Right),
		}
	case *IfExpression:
		out := map[string]any{
			"type":        "IfExpression",
			"condition":   astNode(node.Condition),
			"consequence": astNode(node.Consequence),
		}
		if node.Alternative != nil {
			out["alternative"] = astNode(node.Alternative)
		}
		return out
	case *FunctionLiteral:
		params := make([]string, 0, len(node.Parameters))
		for _, p := range node.Parameters {
			params = append(params, p.Value)
		}
		return map[string]any{
			"type":       "FunctionLiteral",
			"parameters": params,
			"body":       astNode(node.Body),
		}
	case *CallExpression:
		args := make([]map[string]any, 0, len(node.Arguments))
		for _, a := range node.Arguments {
			args = append(args, astNode(a))
		}
		return map[string]any{
			"type":      "CallExpression",
			"function":  astNode(node.Function),
			"arguments": args,
		}
	case *ArrayLiteral:
		elems := make([]map[string]any, 0, len(node.Elements))
		for _, e := range node.Elements {
			elems = append(elems, astNode(e))
		}
		return map[string]any{"type": "ArrayLiteral", "elements": elems}
	case *IndexExpression:
		return map[string]any{
			"type":  "IndexExpression",
			"left":  astNode(node.Left),
			"index": astNode(node.Index),
		}
	case *HashLiteral:
		pairs := make([]map[string]any, 0, len(node.Pairs))
		for _, p := range node.Pairs {
			pairs = append(pairs, map[string]any{
				"key":   astNode(p.Key),
				"value": astNode(p.Value),
			})
		}
		return map[string]any{"type": "HashLiteral", "pairs": pairs}
	default:
		return map[string]any{"type": "Unknown"}
	}
}

func astStatements(stmts []Statement) []map[string]any {
	out := make([]map[string]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, astNode(s))
	}
	return out
}
