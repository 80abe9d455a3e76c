// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

// Typed Clone and Move methods for the wrapped builtin types. They shadow
// the embedded Wrapper methods so the result keeps the concrete type.

// Clone returns an owning deep copy.
func (s String) Clone() String {
	return String{s.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves s empty.
func (s *String) Move() String {
	return String{s.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (b ByteString) Clone() ByteString {
	return ByteString{b.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves b empty.
func (b *ByteString) Move() ByteString {
	return ByteString{b.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (x XMLElement) Clone() XMLElement {
	return XMLElement{x.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves x empty.
func (x *XMLElement) Move() XMLElement {
	return XMLElement{x.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (g Guid) Clone() Guid {
	return Guid{g.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves g zero.
func (g *Guid) Move() Guid {
	return Guid{g.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (q QualifiedName) Clone() QualifiedName {
	return QualifiedName{q.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves q empty.
func (q *QualifiedName) Move() QualifiedName {
	return QualifiedName{q.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (l LocalizedText) Clone() LocalizedText {
	return LocalizedText{l.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves l empty.
func (l *LocalizedText) Move() LocalizedText {
	return LocalizedText{l.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (n NodeID) Clone() NodeID {
	return NodeID{n.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves n nil.
func (n *NodeID) Move() NodeID {
	return NodeID{n.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (r ReadValueID) Clone() ReadValueID {
	return ReadValueID{r.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves r empty.
func (r *ReadValueID) Move() ReadValueID {
	return ReadValueID{r.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (a *NodeAttributes) Clone() *NodeAttributes {
	return &NodeAttributes{a.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves a empty.
func (a *NodeAttributes) Move() *NodeAttributes {
	return &NodeAttributes{a.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (a *ObjectAttributes) Clone() *ObjectAttributes {
	return &ObjectAttributes{a.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves a empty.
func (a *ObjectAttributes) Move() *ObjectAttributes {
	return &ObjectAttributes{a.Wrapper.Move()}
}

// Clone returns an owning deep copy.
func (a *VariableAttributes) Clone() *VariableAttributes {
	return &VariableAttributes{a.Wrapper.Clone()}
}

// Move transfers ownership of the content and leaves a empty.
func (a *VariableAttributes) Move() *VariableAttributes {
	return &VariableAttributes{a.Wrapper.Move()}
}
