package formatter_test

import (
	"fmt"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
)

func ExampleNewStyledFormatter() {
	f := formatter.NewStyledFormatter(formatter.Config{NoColor: true})

	entry := &core.Entry{
		Level:   core.WarnLevel,
		Message: "disk almost full",
		System:  "storage",
		Stamp:   "12:00:00",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// 12:00:00 | WARN | storage | disk almost full
}
