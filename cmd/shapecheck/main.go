// Command shapecheck validates JSON and YAML documents against the shapes
// built into it and serves the same shapes over HTTP.
//
//	shapecheck shapes
//	shapecheck validate --shape signup requests/*.json
//	cat payload.yaml | shapecheck validate --shape person
//	shapecheck serve --shape signup --shape point --addr :9000
package main

func main() {
	Execute()
}
