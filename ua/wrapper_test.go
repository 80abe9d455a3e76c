// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua_test

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/assert"

	"github.com/umati/open62541pp/ua"
)

func TestStringCloneIsIndependent(t *testing.T) {
	s := ua.NewString("abc")
	c := s.Clone()
	s.Clear()
	assert.Equal(t, s.Get(), "")
	assert.Equal(t, c.Get(), "abc")
	assert.DeepEqual(t, c.View(), []byte("abc"))
}

func TestStringMoveLeavesSourceEmpty(t *testing.T) {
	s := ua.NewString("abc")
	m := s.Move()
	assert.Equal(t, m.Get(), "abc")
	assert.Equal(t, s.Get(), "")
	assert.Equal(t, len(s.View()), 0)
}

func TestZeroValueWrapper(t *testing.T) {
	var n ua.NodeID
	n.Clear()
	assert.Assert(t, n.IsNil())
	c := n.Clone()
	assert.Assert(t, c.Equal(n))
	built := ua.NewNodeIDNumeric(0, 0)
	assert.Equal(t, c.TypeID(), built.TypeID())

	var lt ua.LocalizedText
	lt.Clear()
	assert.Assert(t, lt.Equal(ua.LocalizedText{}))
	m := lt.Move()
	assert.Equal(t, m.Text(), "")
}

func TestClearTwice(t *testing.T) {
	s := ua.NewString("abc")
	s.Clear()
	s.Clear()
	assert.Equal(t, s.Get(), "")
}

func TestStringEqual(t *testing.T) {
	a := ua.NewString("abc")
	b := ua.NewString("abc")
	c := ua.NewString("abd")
	assert.Equal(t, a.Equal(b), true)
	assert.Equal(t, a.Equal(c), false)
}

func TestCopyFromReplacesContent(t *testing.T) {
	dst := ua.NewString("old")
	src := ua.NewString("new")
	dst.CopyFrom(&src.Wrapper)
	assert.Equal(t, dst.Get(), "new")
	assert.Equal(t, src.Get(), "new")
	src.Clear()
	assert.Equal(t, dst.Get(), "new")
}

func TestMoveFromTransfersContent(t *testing.T) {
	dst := ua.NewString("old")
	src := ua.NewString("new")
	dst.MoveFrom(&src.Wrapper)
	assert.Equal(t, dst.Get(), "new")
	assert.Equal(t, src.Get(), "")
}

func TestMarshalRoundTrip(t *testing.T) {
	in := ua.NewLocalizedText("Hello", "en")
	data, err := in.Marshal()
	assert.NilError(t, err)

	out := ua.NewLocalizedText("", "")
	assert.NilError(t, out.Unmarshal(data))
	assert.Equal(t, out.Text(), "Hello")
	assert.Equal(t, out.Locale(), "en")
}

func TestUnmarshalTruncated(t *testing.T) {
	out := ua.NewLocalizedText("", "")
	err := out.Unmarshal([]byte{0x03, 0x02})
	assert.Equal(t, err, error(ua.BadDecodingError))
	assert.Equal(t, out.Text(), "")
}

func TestByteStringGetCopies(t *testing.T) {
	b := ua.NewByteString([]byte{1, 2, 3})
	g := b.Get()
	g[0] = 9
	assert.Equal(t, b.View()[0], byte(1))
}

func TestGuidEqualFromComponents(t *testing.T) {
	a := ua.NewGuid(1, 2, 3, [8]byte{0, 0, 0, 0, 0, 0, 0, 1})
	b := ua.NewGuid(1, 2, 3, [8]byte{0, 0, 0, 0, 0, 0, 0, 1})
	c := ua.NewGuid(1, 2, 3, [8]byte{0, 0, 0, 0, 0, 0, 0, 2})
	assert.Equal(t, a.Equal(b), true)
	assert.Equal(t, a.Equal(c), false)
}

func TestGuidUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63")
	g := ua.NewGuidFromUUID(id)
	assert.Equal(t, g.UUID(), id)
	assert.Equal(t, g.String(), "72962b91-fa75-4ae6-8d28-b404dc7daf63")
}

func TestQualifiedNameString(t *testing.T) {
	q := ua.NewQualifiedName(2, "Demo")
	assert.Equal(t, q.NamespaceIndex(), uint16(2))
	assert.Equal(t, q.Name(), "Demo")
	assert.Equal(t, q.String(), "2:Demo")
}

func TestLocalizedText(t *testing.T) {
	l := ua.NewLocalizedText("Hello", "en-US")
	assert.Equal(t, l.Text(), "Hello")
	assert.Equal(t, l.Locale(), "en-US")
	c := l.Clone()
	l.Clear()
	assert.Equal(t, c.Text(), "Hello")
}

func TestXMLElement(t *testing.T) {
	x := ua.NewXMLElement("<a>1</a>")
	assert.Equal(t, x.Get(), "<a>1</a>")
	m := x.Move()
	assert.Equal(t, x.Get(), "")
	assert.Equal(t, m.Get(), "<a>1</a>")
}
