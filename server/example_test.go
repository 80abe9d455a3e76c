// Copyright 2024 The open62541pp Authors. All rights reserved.

package server_test

import (
	"fmt"

	"github.com/umati/open62541pp/server"
	"github.com/umati/open62541pp/ua"
)

// This example creates a server, adds a variable node to its namespace and
// reads the value attribute back.
func Example() {
	srv, err := server.New("urn:example", "opc.tcp://localhost:4840")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer srv.Close()

	nodeID := ua.NewNodeIDString(2, "Demo.Temperature")
	attrs := ua.NewVariableAttributes().
		SetDisplayName(ua.NewLocalizedText("Temperature", "en")).
		SetValue(21.5)
	if res := srv.Namespace().AddVariableNode(nodeID, ua.NewQualifiedName(2, "Temperature"), attrs); res.Err() != nil {
		fmt.Println(res.Err())
		return
	}

	res := srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDValue))
	if dv, err := res.Value(); err == nil {
		fmt.Printf("%s: %v\n", nodeID, dv.Value)
	}
	// Output:
	// ns=2;s=Demo.Temperature: 21.5
}
