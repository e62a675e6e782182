package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/viant/coerce"
	"github.com/viant/coerce/config"
	"github.com/viant/coerce/conv"
)

var families = map[string]reflect.Type{
	"bool":          coerce.TypeOf[bool](),
	"short":         coerce.TypeOf[int16](),
	"int":           coerce.TypeOf[int32](),
	"long":          coerce.TypeOf[int64](),
	"decimal":       coerce.TypeOf[decimal.Decimal](),
	"string":        coerce.TypeOf[string](),
	"date":          coerce.TypeOf[time.Time](),
	"sqldate":       coerce.TypeOf[conv.SQLDate](),
	"timestamp":     coerce.TypeOf[conv.SQLTimestamp](),
	"localdate":     coerce.TypeOf[civil.Date](),
	"localdatetime": coerce.TypeOf[civil.DateTime](),
	"offset":        coerce.TypeOf[conv.OffsetDateTime](),
	"strings":       coerce.TypeOf[[]string](),
	"list":          coerce.TypeOf[[]any](),
}

func main() {
	configPath := flag.String("config", "", "settings TOML file")
	family := flag.String("type", "string", "target type: "+strings.Join(names(), ", "))
	dump := flag.Bool("dump", false, "print effective settings")
	flag.Parse()

	settings := &config.Settings{}
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *dump {
		text, err := settings.TOML()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
		return
	}
	target, ok := families[*family]
	if !ok {
		log.Fatalf("unsupported type: %v, supported: %v", *family, strings.Join(names(), ", "))
	}
	registry, err := settings.Registry()
	if err != nil {
		log.Fatal(err)
	}
	var value any
	switch args := flag.Args(); len(args) {
	case 0:
		flag.Usage()
		os.Exit(2)
	case 1:
		value = args[0]
	default:
		value = args
	}
	ret, err := registry.Convert(target, value)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v\n", ret)
}

func names() []string {
	ret := make([]string, 0, len(families))
	for name := range families {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
