// Command capi builds the qtty C ABI as a shared library:
//
//	go build -buildmode=c-shared -o libqtty.so ./capi
//
// The exported qtty_* symbols use the C calling convention and communicate
// results through integer status codes (see registry.Status): 0 is success,
// negative values distinguish unknown units, incompatible dimensions, and
// null output pointers.
package main

/*
#include <stdint.h>
#include <stdbool.h>

typedef struct {
	double  value;
	int32_t unit;
} qtty_quantity_t;
*/
import "C"

import (
	"sync"

	"github.com/qttylib/qtty/registry"
)

// C strings handed out by the ABI are interned once and live for the process
// lifetime; callers must not free them.
var (
	cstrOnce  sync.Once
	versionC  *C.char
	unitNameC map[registry.UnitID]*C.char
)

func internStrings() {
	cstrOnce.Do(func() {
		versionC = C.CString(ffiVersion())
		unitNameC = make(map[registry.UnitID]*C.char)
		for _, id := range registry.Units() {
			unitNameC[id] = C.CString(registry.Name(id))
		}
	})
}

//export qtty_ffi_version
func qtty_ffi_version() *C.char {
	internStrings()
	return versionC
}

//export qtty_quantity_make
func qtty_quantity_make(value C.double, unit C.int32_t, out *C.qtty_quantity_t) C.int32_t {
	var res registry.Quantity
	outGo := quantityOut(out, &res)
	st := quantityMake(float64(value), registry.UnitID(unit), outGo)
	if st == registry.StatusOK {
		storeQuantity(out, res)
	}
	return C.int32_t(st)
}

//export qtty_quantity_convert
func qtty_quantity_convert(in *C.qtty_quantity_t, dstUnit C.int32_t, out *C.qtty_quantity_t) C.int32_t {
	var inGo *registry.Quantity
	if in != nil {
		inGo = &registry.Quantity{Value: float64(in.value), Unit: registry.UnitID(in.unit)}
	}
	var res registry.Quantity
	outGo := quantityOut(out, &res)
	st := quantityConvert(inGo, registry.UnitID(dstUnit), outGo)
	if st == registry.StatusOK {
		storeQuantity(out, res)
	}
	return C.int32_t(st)
}

//export qtty_quantity_convert_value
func qtty_quantity_convert_value(value C.double, srcUnit, dstUnit C.int32_t, out *C.double) C.int32_t {
	var res float64
	var outGo *float64
	if out != nil {
		outGo = &res
	}
	st := quantityConvertValue(float64(value), registry.UnitID(srcUnit), registry.UnitID(dstUnit), outGo)
	if st == registry.StatusOK {
		*out = C.double(res)
	}
	return C.int32_t(st)
}

//export qtty_unit_dimension
func qtty_unit_dimension(unit C.int32_t, out *C.int32_t) C.int32_t {
	var res registry.DimensionID
	var outGo *registry.DimensionID
	if out != nil {
		outGo = &res
	}
	st := unitDimension(registry.UnitID(unit), outGo)
	if st == registry.StatusOK {
		*out = C.int32_t(res)
	}
	return C.int32_t(st)
}

//export qtty_unit_is_valid
func qtty_unit_is_valid(unit C.int32_t) C.bool {
	return C.bool(unitIsValid(registry.UnitID(unit)))
}

//export qtty_unit_name
func qtty_unit_name(unit C.int32_t) *C.char {
	id := registry.UnitID(unit)
	if _, ok := unitName(id); !ok {
		return nil
	}
	internStrings()
	return unitNameC[id]
}

//export qtty_units_compatible
func qtty_units_compatible(a, b C.int32_t) C.bool {
	return C.bool(unitsCompatible(registry.UnitID(a), registry.UnitID(b)))
}

func quantityOut(out *C.qtty_quantity_t, res *registry.Quantity) *registry.Quantity {
	if out == nil {
		return nil
	}
	return res
}

func storeQuantity(out *C.qtty_quantity_t, q registry.Quantity) {
	out.value = C.double(q.Value)
	out.unit = C.int32_t(q.Unit)
}

func main() {}
