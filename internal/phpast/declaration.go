package phpast

// Declaration is a syntax-tree node that may carry a type annotation and a
// doc comment.
type Declaration interface {
	// TypeSlot is the declared type of a property or parameter.
	TypeSlot() TypeNode
	// ReturnTypeSlot is the declared return type of a function or method.
	ReturnTypeSlot() TypeNode
	// DocComment returns the raw text of the attached doc comment.
	DocComment() (string, bool)
}

// Property is a class property declaration.
type Property struct {
	Name string
	Type TypeNode
	Doc  string
}

func (p *Property) TypeSlot() TypeNode       { return p.Type }
func (p *Property) ReturnTypeSlot() TypeNode { return nil }
func (p *Property) DocComment() (string, bool) {
	return p.Doc, p.Doc != ""
}

// Param is a function or method parameter. Parameters carry no doc comment
// of their own; their @param tags live on the enclosing method.
type Param struct {
	Name string
	Type TypeNode
}

func (p *Param) TypeSlot() TypeNode         { return p.Type }
func (p *Param) ReturnTypeSlot() TypeNode   { return nil }
func (p *Param) DocComment() (string, bool) { return "", false }

// Method is a function or method declaration.
type Method struct {
	Name       string
	Params     []*Param
	ReturnType TypeNode
	Doc        string
}

func (m *Method) TypeSlot() TypeNode       { return nil }
func (m *Method) ReturnTypeSlot() TypeNode { return m.ReturnType }
func (m *Method) DocComment() (string, bool) {
	return m.Doc, m.Doc != ""
}

// Param returns the parameter with the given name (without "$").
func (m *Method) Param(name string) (*Param, bool) {
	for _, p := range m.Params {
		if p.Name == name {
			return p, true
		}
	}

	return nil, false
}
