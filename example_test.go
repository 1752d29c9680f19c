package hcl_test

import (
	"fmt"

	"github.com/maurice/hcl"
)

func ExampleParseBody() {
	body, err := hcl.ParseBody(`name = "Alice"` + "\n")
	if err != nil {
		panic(err)
	}
	attr := body.Items[0].(*hcl.Attribute)
	fmt.Println(attr.Key.Value)
	// Output:
	// name
}

func ExampleBody_String() {
	input := "# Config\ntitle = \"My App\"\n"
	body, _ := hcl.ParseBody(input)
	fmt.Print(body.String())
	// Output:
	// # Config
	// title = "My App"
}

func ExampleBody_GetAttribute() {
	body, _ := hcl.ParseBody("server {\n  host = \"localhost\"\n}\n")
	server := body.FirstBlock("server")
	attr := server.Body.GetAttribute("host")
	fmt.Println(attr.Value.(*hcl.StringExpr).Value)
	// Output:
	// localhost
}

func ExampleBody_FirstBlock() {
	body, _ := hcl.ParseBody("resource \"aws_instance\" \"web\" {\n  ami = \"abc\"\n}\n")
	blk := body.FirstBlock("resource", "aws_instance", "web")
	fmt.Println(blk.Body.GetAttribute("ami").Value.(*hcl.StringExpr).Value)
	// Output:
	// abc
}

func ExampleBody_Append() {
	body, _ := hcl.ParseBody("a = 1\n")
	body.Append(hcl.NewAttribute("b", hcl.NewNumberExpr(2)))
	fmt.Print(body.String())
	// Output:
	// a = 1
	// b = 2
}
