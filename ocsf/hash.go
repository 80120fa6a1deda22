package ocsf

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprinting writes each identifying field into a single xxhash digest
// in the declaration order of its event class. The order is fixed by code,
// never by map iteration, so keys are stable across builds and platforms.
//
// Strings carry a length prefix so adjacent fields cannot alias each other,
// and optional fields contribute a presence tag so that an absent field
// hashes differently from a present field holding zero values.

const (
	tagAbsent  = byte(0)
	tagPresent = byte(1)
)

func hashUint(d *xxhash.Digest, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, _ = d.Write(b[:])
}

func hashString(d *xxhash.Digest, s string) {
	hashUint(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}

func hashBool(d *xxhash.Digest, v bool) {
	if v {
		_, _ = d.Write([]byte{tagPresent})
		return
	}
	_, _ = d.Write([]byte{tagAbsent})
}

func hashPresence(d *xxhash.Digest, present bool) {
	if present {
		_, _ = d.Write([]byte{tagPresent})
		return
	}
	_, _ = d.Write([]byte{tagAbsent})
}

// hashStrings mixes a sequence in order with a length prefix. A nil and an
// empty sequence hash identically: both mean "no elements".
func hashStrings(d *xxhash.Digest, vs []string) {
	hashUint(d, uint64(len(vs)))
	for _, v := range vs {
		hashString(d, v)
	}
}
