// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua_test

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/assert"

	"github.com/umati/open62541pp/ua"
)

func TestNodeIDNumeric(t *testing.T) {
	n := ua.NewNodeIDNumeric(0, 85)
	assert.Equal(t, n.NamespaceIndex(), uint16(0))
	assert.Equal(t, n.IDType(), ua.IDTypeNumeric)
	assert.Equal(t, n.Identifier(), uint32(85))
	assert.Equal(t, n.String(), "i=85")
}

func TestNodeIDString(t *testing.T) {
	n := ua.NewNodeIDString(2, "Demo.Static")
	assert.Equal(t, n.IDType(), ua.IDTypeString)
	assert.Equal(t, n.Identifier(), "Demo.Static")
	assert.Equal(t, n.String(), "ns=2;s=Demo.Static")
}

func TestNodeIDGUID(t *testing.T) {
	id := uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63")
	n := ua.NewNodeIDGUID(3, id)
	assert.Equal(t, n.IDType(), ua.IDTypeGUID)
	assert.Equal(t, n.String(), "ns=3;g=72962b91-fa75-4ae6-8d28-b404dc7daf63")
}

func TestNodeIDOpaque(t *testing.T) {
	n := ua.NewNodeIDOpaque(1, []byte("abc"))
	assert.Equal(t, n.IDType(), ua.IDTypeOpaque)
	assert.Equal(t, n.String(), "ns=1;b=YWJj")
}

func TestParseNodeID(t *testing.T) {
	cases := []struct {
		s  string
		eq ua.NodeID
	}{
		{"i=85", ua.NewNodeIDNumeric(0, 85)},
		{"ns=2;s=Demo.Static", ua.NewNodeIDString(2, "Demo.Static")},
		{"ns=1;b=YWJj", ua.NewNodeIDOpaque(1, []byte("abc"))},
		{"ns=3;g=72962b91-fa75-4ae6-8d28-b404dc7daf63", ua.NewNodeIDGUID(3, uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63"))},
	}
	for _, c := range cases {
		n := ua.ParseNodeID(c.s)
		assert.Equal(t, n.Equal(c.eq), true)
		assert.Equal(t, n.String(), c.s)
	}
}

func TestParseNodeIDInvalid(t *testing.T) {
	assert.Equal(t, ua.ParseNodeID("garbage").IsNil(), true)
	assert.Equal(t, ua.ParseNodeID("ns=x;i=1").IsNil(), true)
}

func TestNodeIDEqual(t *testing.T) {
	a := ua.NewNodeIDNumeric(2, 1)
	b := ua.NewNodeIDNumeric(2, 1)
	c := ua.NewNodeIDNumeric(3, 1)
	assert.Equal(t, a.Equal(b), true)
	assert.Equal(t, a.Equal(c), false)
}

func TestNodeIDCloneAndMove(t *testing.T) {
	n := ua.NewNodeIDString(2, "Demo")
	c := n.Clone()
	m := n.Move()
	assert.Equal(t, n.IsNil(), true)
	assert.Equal(t, c.Equal(m), true)
	assert.Equal(t, m.String(), "ns=2;s=Demo")
}
