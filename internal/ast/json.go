package ast

import "encoding/json"

// JSON encoding of the AST. Every node carries a "type" discriminator so
// the trees round-trip through external tooling; the field names match the
// shapes consumed by the CLI's export commands.

type identifierJSON struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func ident(name string) identifierJSON {
	return identifierJSON{Type: "Identifier", Name: name}
}

// MarshalJSON implements json.Marshaler.
func (p *Program) MarshalJSON() ([]byte, error) {
	body := p.Body
	if body == nil {
		body = []Stmt{}
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
		Body []Stmt `json:"body"`
	}{"Program", p.Name, body})
}

// MarshalJSON implements json.Marshaler.
func (d *ConstDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string         `json:"type"`
		ID      identifierJSON `json:"id"`
		VarType VarType        `json:"varType"`
		Value   Expr           `json:"value"`
	}{"ConstDecl", ident(d.Name), d.VarType, d.Value})
}

// MarshalJSON implements json.Marshaler.
func (d *VarDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string         `json:"type"`
		ID      identifierJSON `json:"id"`
		VarType VarType        `json:"varType"`
		Init    Expr           `json:"init"`
	}{"VarDecl", ident(d.Name), d.VarType, d.Init})
}

// MarshalJSON implements json.Marshaler.
func (a *Assign) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string         `json:"type"`
		Target identifierJSON `json:"target"`
		Value  Expr           `json:"value"`
	}{"Assign", ident(a.Target), a.Value})
}

// MarshalJSON implements json.Marshaler.
func (s *IfStmt) MarshalJSON() ([]byte, error) {
	consequent := s.Consequent
	if consequent == nil {
		consequent = []Stmt{}
	}
	return json.Marshal(struct {
		Type       string `json:"type"`
		Test       Expr   `json:"test"`
		Consequent []Stmt `json:"consequent"`
		Alternate  []Stmt `json:"alternate"`
	}{"IfStmt", s.Test, consequent, s.Alternate})
}

// MarshalJSON implements json.Marshaler.
func (s *WhileStmt) MarshalJSON() ([]byte, error) {
	body := s.Body
	if body == nil {
		body = []Stmt{}
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		Test Expr   `json:"test"`
		Body []Stmt `json:"body"`
	}{"WhileStmt", s.Test, body})
}

// MarshalJSON implements json.Marshaler.
func (s *ActionStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string   `json:"type"`
		Action string   `json:"action"`
		Args   []string `json:"args"`
	}{"ActionStmt", s.Action.String(), []string{}})
}

// MarshalJSON implements json.Marshaler.
func (s *BlockStmt) MarshalJSON() ([]byte, error) {
	body := s.Body
	if body == nil {
		body = []Stmt{}
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		Body []Stmt `json:"body"`
	}{"BlockStmt", body})
}

// MarshalJSON implements json.Marshaler.
func (e *BinaryExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Operator string `json:"operator"`
		Left     Expr   `json:"left"`
		Right    Expr   `json:"right"`
	}{"BinaryExpr", e.Op, e.Left, e.Right})
}

// MarshalJSON implements json.Marshaler.
func (e *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(ident(e.Name))
}

// MarshalJSON implements json.Marshaler.
func (e *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string      `json:"type"`
		Value interface{} `json:"value"`
	}{"Literal", e.Value})
}
