package flowchart_test

import (
	"fmt"

	"github.com/matzehuels/mermaidgen/pkg/mermaid/flowchart"
)

func ExampleBuilder() {
	b := flowchart.NewBuilder(flowchart.Config{})
	start, _ := b.AddNode(flowchart.NewNode().Label("Start"))
	end, _ := b.AddNode(flowchart.NewNode().Label("End"))
	_ = b.AddEdge(flowchart.NewEdge().Source(start).Destination(end).Arrow(flowchart.ArrowNormal))

	fmt.Print(b.Build().Render())
	// Output:
	// flowchart LR
	// v0@{shape: rect, label: "Start"}
	// v1@{shape: rect, label: "End"}
	// v0 ---> v1
}

func ExampleBuilder_shapes() {
	b := flowchart.NewBuilder(flowchart.Config{})
	ask, _ := b.AddNode(flowchart.NewNode().Label("Valid?").Shape(flowchart.ShapeDiamond))
	db, _ := b.AddNode(flowchart.NewNode().Label("Archive").Shape(flowchart.ShapeCylinder))
	_ = b.AddEdge(flowchart.NewEdge().Source(ask).Destination(db).Arrow(flowchart.ArrowNormal).Label("yes"))

	fmt.Print(b.Build().Render())
	// Output:
	// flowchart LR
	// v0@{shape: diamond, label: "Valid?"}
	// v1@{shape: cyl, label: "Archive"}
	// v0 --->|"yes"| v1
}
