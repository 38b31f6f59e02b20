package datum

import (
	"strconv"
	"strings"
)

// Dump renders d as an indented tree, one value per line. Records list
// fields in declaration order and maps list keys in sorted order.
func Dump(d Datum) string {
	var b strings.Builder
	dump(&b, d, 0)
	b.WriteByte('\n')
	return b.String()
}

func dump(b *strings.Builder, d Datum, depth int) {
	if d == nil {
		b.WriteString("<nil>")
		return
	}
	if IsDestroyed(d) {
		b.WriteString("<destroyed ")
		b.WriteString(d.Kind().String())
		b.WriteByte('>')
		return
	}
	switch v := d.(type) {
	case *NullDatum:
		b.WriteString("null")
	case *Boolean:
		b.WriteString("boolean ")
		b.WriteString(strconv.FormatBool(v.v))
	case *Int32:
		b.WriteString("int ")
		b.WriteString(strconv.FormatInt(int64(v.v), 10))
	case *Int64:
		b.WriteString("long ")
		b.WriteString(strconv.FormatInt(v.v, 10))
	case *Float:
		b.WriteString("float ")
		b.WriteString(strconv.FormatFloat(float64(v.v), 'g', -1, 32))
	case *Double:
		b.WriteString("double ")
		b.WriteString(strconv.FormatFloat(v.v, 'g', -1, 64))
	case *String:
		b.WriteString("string ")
		b.WriteString(strconv.Quote(v.Get()))
	case *Bytes:
		b.WriteString("bytes ")
		b.WriteString(quoteBytes(v.Get()))
	case *Fixed:
		b.WriteString("fixed ")
		b.WriteString(v.Name())
		b.WriteByte(' ')
		b.WriteString(quoteBytes(v.Get()))
	case *Enum:
		b.WriteString("enum ")
		b.WriteString(v.Name())
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v.value))
	case *Union:
		b.WriteString("union ")
		b.WriteString(strconv.FormatInt(v.discriminant, 10))
		b.WriteByte(' ')
		dump(b, v.branch, depth)
	case *Array:
		if len(v.items) == 0 {
			b.WriteString("array []")
			return
		}
		b.WriteString("array [\n")
		for i, item := range v.items {
			indent(b, depth+1)
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(i))
			b.WriteString("] ")
			dump(b, item, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte(']')
	case *Map:
		if len(v.entries) == 0 {
			b.WriteString("map {}")
			return
		}
		b.WriteString("map {\n")
		for k, item := range v.All() {
			indent(b, depth+1)
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			dump(b, item, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte('}')
	case *Record:
		b.WriteString("record ")
		b.WriteString(v.FullName())
		if len(v.order) == 0 {
			b.WriteString(" {}")
			return
		}
		b.WriteString(" {\n")
		for name, item := range v.Fields() {
			indent(b, depth+1)
			b.WriteString(name)
			b.WriteString(": ")
			dump(b, item, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte('}')
	}
}

func indent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}

func quoteBytes(p []byte) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range p {
		if c >= 0x20 && c < 0x7f && c != '"' && c != '\\' {
			b.WriteByte(c)
			continue
		}
		b.WriteString(`\x`)
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	b.WriteByte('"')
	return b.String()
}

const hexDigits = "0123456789abcdef"
