package typeid

import (
	"reflect"
	"strconv"
	"strings"
)

// canonicalName builds a fully qualified textual representation of a type.
//
// Unlike reflect.Type.String, which abbreviates package paths to their last
// element, the canonical name embeds the complete import path of every named
// type, so types with identical short names from different packages do not
// collide. Unnamed composite types are spelled out structurally.
func canonicalName(t reflect.Type) string {
	var sb strings.Builder
	writeName(&sb, t)
	return sb.String()
}

func writeName(sb *strings.Builder, t reflect.Type) {
	if name := t.Name(); name != "" {
		if path := t.PkgPath(); path != "" {
			sb.WriteString(path)
			sb.WriteByte('.')
		}
		// Name includes type arguments for generic instantiations.
		sb.WriteString(name)
		return
	}
	switch t.Kind() {
	case reflect.Pointer:
		sb.WriteByte('*')
		writeName(sb, t.Elem())
	case reflect.Slice:
		sb.WriteString("[]")
		writeName(sb, t.Elem())
	case reflect.Array:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(t.Len()))
		sb.WriteByte(']')
		writeName(sb, t.Elem())
	case reflect.Map:
		sb.WriteString("map[")
		writeName(sb, t.Key())
		sb.WriteByte(']')
		writeName(sb, t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			sb.WriteString("<-chan ")
		case reflect.SendDir:
			sb.WriteString("chan<- ")
		default:
			sb.WriteString("chan ")
		}
		writeName(sb, t.Elem())
	case reflect.Func:
		writeFuncName(sb, t)
	case reflect.Struct:
		writeStructName(sb, t)
	case reflect.Interface:
		writeInterfaceName(sb, t)
	default:
		// Unnamed basic types cannot occur; Kind notation is a safe fallback.
		sb.WriteString(t.Kind().String())
	}
}

func writeFuncName(sb *strings.Builder, t reflect.Type) {
	sb.WriteString("func(")
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			sb.WriteString("...")
			writeName(sb, t.In(i).Elem())
			continue
		}
		writeName(sb, t.In(i))
	}
	sb.WriteByte(')')
	if t.NumOut() == 0 {
		return
	}
	sb.WriteString(" (")
	for i := 0; i < t.NumOut(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeName(sb, t.Out(i))
	}
	sb.WriteByte(')')
}

func writeStructName(sb *strings.Builder, t reflect.Type) {
	sb.WriteString("struct {")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteByte(' ')
		if !f.Anonymous {
			sb.WriteString(f.Name)
			sb.WriteByte(' ')
		}
		writeName(sb, f.Type)
		if f.Tag != "" {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Quote(string(f.Tag)))
		}
	}
	sb.WriteString(" }")
}

func writeInterfaceName(sb *strings.Builder, t reflect.Type) {
	if t.NumMethod() == 0 {
		sb.WriteString("interface {}")
		return
	}
	sb.WriteString("interface {")
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteByte(' ')
		sb.WriteString(m.Name)
		var fn strings.Builder
		writeFuncName(&fn, m.Type)
		sb.WriteString(strings.TrimPrefix(fn.String(), "func"))
	}
	sb.WriteString(" }")
}
