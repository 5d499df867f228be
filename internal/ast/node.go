package ast

// Node is implemented by every AST node.
type Node interface {
	NodeType() NodeType
	String() string

	// Location support for diagnostics and source mapping
	GetDebugData() *DebugData
	SetDebugData(*DebugData)
}

func (b *Block) GetDebugData() *DebugData  { return b.Debug }
func (b *Block) SetDebugData(d *DebugData) { b.Debug = d }
func (*Block) NodeType() NodeType          { return BLOCK }

func (i *Identifier) GetDebugData() *DebugData  { return i.Debug }
func (i *Identifier) SetDebugData(d *DebugData) { i.Debug = d }
func (*Identifier) NodeType() NodeType          { return IDENTIFIER }

func (tn *TypedName) GetDebugData() *DebugData  { return tn.Debug }
func (tn *TypedName) SetDebugData(d *DebugData) { tn.Debug = d }
func (*TypedName) NodeType() NodeType           { return TYPED_NAME }

func (l *Literal) GetDebugData() *DebugData  { return l.Debug }
func (l *Literal) SetDebugData(d *DebugData) { l.Debug = d }
func (*Literal) NodeType() NodeType          { return LITERAL }

func (fc *FunctionCall) GetDebugData() *DebugData  { return fc.Debug }
func (fc *FunctionCall) SetDebugData(d *DebugData) { fc.Debug = d }
func (*FunctionCall) NodeType() NodeType           { return FUNCTION_CALL }

func (be *BadExpr) GetDebugData() *DebugData  { return be.Debug }
func (be *BadExpr) SetDebugData(d *DebugData) { be.Debug = d }
func (*BadExpr) NodeType() NodeType           { return BAD_EXPR }

func (es *ExpressionStatement) GetDebugData() *DebugData  { return es.Debug }
func (es *ExpressionStatement) SetDebugData(d *DebugData) { es.Debug = d }
func (*ExpressionStatement) NodeType() NodeType           { return EXPRESSION_STATEMENT }

func (a *Assignment) GetDebugData() *DebugData  { return a.Debug }
func (a *Assignment) SetDebugData(d *DebugData) { a.Debug = d }
func (*Assignment) NodeType() NodeType          { return ASSIGNMENT }

func (vd *VariableDeclaration) GetDebugData() *DebugData  { return vd.Debug }
func (vd *VariableDeclaration) SetDebugData(d *DebugData) { vd.Debug = d }
func (*VariableDeclaration) NodeType() NodeType           { return VARIABLE_DECLARATION }

func (fd *FunctionDefinition) GetDebugData() *DebugData  { return fd.Debug }
func (fd *FunctionDefinition) SetDebugData(d *DebugData) { fd.Debug = d }
func (*FunctionDefinition) NodeType() NodeType           { return FUNCTION_DEFINITION }

func (i *If) GetDebugData() *DebugData  { return i.Debug }
func (i *If) SetDebugData(d *DebugData) { i.Debug = d }
func (*If) NodeType() NodeType          { return IF }

func (c *Case) GetDebugData() *DebugData  { return c.Debug }
func (c *Case) SetDebugData(d *DebugData) { c.Debug = d }
func (*Case) NodeType() NodeType          { return CASE }

func (s *Switch) GetDebugData() *DebugData  { return s.Debug }
func (s *Switch) SetDebugData(d *DebugData) { s.Debug = d }
func (*Switch) NodeType() NodeType          { return SWITCH }

func (f *ForLoop) GetDebugData() *DebugData  { return f.Debug }
func (f *ForLoop) SetDebugData(d *DebugData) { f.Debug = d }
func (*ForLoop) NodeType() NodeType          { return FOR_LOOP }

func (b *Break) GetDebugData() *DebugData  { return b.Debug }
func (b *Break) SetDebugData(d *DebugData) { b.Debug = d }
func (*Break) NodeType() NodeType          { return BREAK }

func (c *Continue) GetDebugData() *DebugData  { return c.Debug }
func (c *Continue) SetDebugData(d *DebugData) { c.Debug = d }
func (*Continue) NodeType() NodeType          { return CONTINUE }

func (l *Leave) GetDebugData() *DebugData  { return l.Debug }
func (l *Leave) SetDebugData(d *DebugData) { l.Debug = d }
func (*Leave) NodeType() NodeType          { return LEAVE }
