// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package database_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/database"
	"github.com/jetsetilly/gopherboy/test"
)

func exerciseKeyValue(t *testing.T, kv database.KeyValue) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, []byte("missing"))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	test.DemandSuccess(t, kv.Set(ctx, []byte{0x01, 0x02}, []byte("hello")))
	v, ok, err := kv.Get(ctx, []byte{0x01, 0x02})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectBytes(t, v, []byte("hello"))

	// replacement
	test.DemandSuccess(t, kv.Set(ctx, []byte{0x01, 0x02}, []byte("world!")))
	v, ok, err = kv.Get(ctx, []byte{0x01, 0x02})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectBytes(t, v, []byte("world!"))

	// empty values are still values
	test.DemandSuccess(t, kv.Set(ctx, []byte{0xff}, []byte{}))
	v, ok, err = kv.Get(ctx, []byte{0xff})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(v), 0)

	// cancelled context
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	test.ExpectFailure(t, kv.Set(cctx, []byte{0x01}, []byte("x")))
	_, _, err = kv.Get(cctx, []byte{0x01, 0x02})
	test.ExpectFailure(t, err)
}

func TestMemory(t *testing.T) {
	mem := database.NewMemory()
	exerciseKeyValue(t, mem)
	test.ExpectEquality(t, mem.Len(), 2)
	test.ExpectEquality(t, mem.Sets(), 3)

	// values returned by Get() are copies
	ctx := context.Background()
	v, _, _ := mem.Get(ctx, []byte{0x01, 0x02})
	v[0] = 'X'
	w, _, _ := mem.Get(ctx, []byte{0x01, 0x02})
	test.ExpectBytes(t, w, []byte("world!"))

	failure := errors.New("disk on fire")
	mem.SetFailure(failure)
	_, _, err := mem.Get(ctx, []byte{0x01, 0x02})
	test.ExpectSuccess(t, errors.Is(err, failure))
	test.ExpectSuccess(t, errors.Is(mem.Set(ctx, []byte{0x01}, nil), failure))
	test.ExpectEquality(t, mem.Sets(), 3)

	mem.SetFailure(nil)
	_, ok, err := mem.Get(ctx, []byte{0x01, 0x02})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
}

func TestDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")
	dsk, err := database.NewDisk(dir)
	test.DemandSuccess(t, err)
	exerciseKeyValue(t, dsk)

	keys, err := dsk.Keys()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(keys), 2)
	test.ExpectBytes(t, keys[0], []byte{0x01, 0x02})
	test.ExpectBytes(t, keys[1], []byte{0xff})

	// no temporary files remain after successful writes
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	// a second Disk over the same directory sees the same values
	dsk2, err := database.NewDisk(dir)
	test.DemandSuccess(t, err)
	v, ok, err := dsk2.Get(context.Background(), []byte{0x01, 0x02})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectBytes(t, v, []byte("world!"))
}
