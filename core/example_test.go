package core_test

import (
	"fmt"
	"strings"

	"github.com/antoine-coulon/dag-go/core"
)

// ExampleGraph_AdjacentTo demonstrates building a small build-unit graph and
// reading a vertex's dependencies in edge-insertion order.
//
//	app ──▶ lib ──▶ util
//	 └─────────────▲
func ExampleGraph_AdjacentTo() {
	g := core.NewGraph()
	g.AddVertices(
		core.Vertex{ID: "app"},
		core.Vertex{ID: "lib"},
		core.Vertex{ID: "util"},
	)
	g.AddEdge("app", "lib")
	g.AddEdge("app", "util")
	g.AddEdge("lib", "util")

	// Dependencies of app, in the order the edges were created.
	var ids []string
	for _, v := range g.AdjacentTo("app") {
		ids = append(ids, v.ID)
	}
	fmt.Println(strings.Join(ids, " "))

	// Dependents of util, in store enumeration order.
	fmt.Println(strings.Join(g.AdjacentFromIDs("util"), " "))

	// Output:
	// lib util
	// app lib
}

// ExampleGraph_MergePayload demonstrates the in-place shallow merge.
func ExampleGraph_MergePayload() {
	g := core.NewGraph()
	g.AddVertices(core.Vertex{ID: "index.js", Payload: map[string]any{
		"content": "console.log('v1')",
		"lang":    "js",
	}})

	// New content arrives; lang is preserved, content is overwritten.
	g.MergePayload("index.js", map[string]any{"content": "console.log('v2')"})

	v, _ := g.Vertex("index.js")
	fmt.Println(v.Payload["lang"], v.Payload["content"])

	// Output:
	// js console.log('v2')
}
