// Package frame builds the arena-indexed value graph mappers emit for
// extracted data.
//
// # Overview
//
// A Frame is an append-only arena of Values plus named Fields rooting into
// it. Values never embed other Values; Lists and Maps reference children
// by arena index, and a child's index is always strictly less than its
// parent's. That makes every well-built Frame a DAG that a single linear
// pass can serialize, and it lets two roots share one payload without
// re-encoding it:
//
//	b := frame.NewBuilder()
//	dur := b.PushFloat(1.5)
//	ctx, _ := b.PushMap(
//	    frame.MapEntry{Key: "duration", Val: dur},
//	    frame.MapEntry{Key: "service", Val: b.PushString("api")},
//	)
//	_ = b.AddField("duration", dur) // shared with the map above
//	_ = b.AddField("context", ctx)
//	f := b.Build()
//	line, _ := f.AppendJSON(nil)
//
// Builder methods bounds-check child indices, so a Frame returned by Build
// upholds the acyclicity invariant by construction.
package frame
