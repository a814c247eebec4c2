package pythontype

import (
	"encoding/binary"

	spooky "github.com/dgryski/go-spooky"
)

// TypeHash is a structural hash of a Value
type TypeHash uint64

// rehash combines several hashes into one
func rehash(x ...TypeHash) TypeHash {
	var h uint64
	b := make([]byte, 8)
	for _, xi := range x {
		binary.LittleEndian.PutUint64(b, uint64(xi))
		h = spooky.Hash64Seed(b, h)
	}
	return TypeHash(h)
}

// rehashValues combines a hash with the hashes of zero or more values
func rehashValues(x TypeHash, vs ...Value) TypeHash {
	var h uint64
	b := make([]byte, 8)
	for _, v := range vs {
		binary.LittleEndian.PutUint64(b, uint64(Hash(v)))
		h = spooky.Hash64Seed(b, h)
	}
	binary.LittleEndian.PutUint64(b, h)
	return TypeHash(spooky.Hash64Seed(b, uint64(x)))
}

// rehashBytes combines a hash with the hash of a byte slice
func rehashBytes(x TypeHash, b []byte) TypeHash {
	return TypeHash(spooky.Hash64Seed(b, uint64(x)))
}

// These constants ensure that the hash of each value is repeatable but unique.
// The numbers are randomly generated.
const (
	saltBuiltinType      = 2210547936281
	saltDict             = 6852785620859
	saltList             = 2608058625550
	saltTuple            = 9785314953969
	saltProperty         = 4651918196213
	saltUnion            = 1085740485675
	saltNone             = 6758959635298
	saltBool             = 1935468612388
	saltInt              = 4663644334535
	saltFloat            = 9843092804544
	saltStr              = 6087650786584
	saltInstance         = 7341018329754
	saltExternalModule   = 5768797545612
	saltExternalInstance = 7018347391875
)
