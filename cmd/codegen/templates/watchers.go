package templates

import (
	"strconv"

	qt "github.com/valyala/quicktemplate"
)

// WatchersGen renders the multi-source watcher variants Watch2..WatchN
// for the root package.
func WatchersGen(maxArity int) string {
	qb := qt.AcquireByteBuffer()
	qw := qt.AcquireWriter(qb)
	streamWatchers(qw.N(), maxArity)
	qt.ReleaseWriter(qw)
	contents := string(qb.B)
	qt.ReleaseByteBuffer(qb)
	return contents
}

func streamWatchers(w *qt.QWriter, maxArity int) {
	w.S("// Code generated by cmd/codegen. DO NOT EDIT.\n")
	w.S("\n")
	w.S("package ripple\n")
	for n := 2; n <= maxArity; n++ {
		streamWatcher(w, n)
	}
}

func streamWatcher(w *qt.QWriter, n int) {
	arity := strconv.Itoa(n)
	params := typeParams(n)
	args := typeArgs(n)
	cbType := "WatchCallback" + arity + "[" + args + "]"

	w.S("\n")
	w.S("// WatchCallback" + arity + " receives the new and previous values of ")
	if n == 2 {
		w.S("both sources.\n")
	} else {
		w.S("all " + arity + " sources.\n")
	}
	w.S("type WatchCallback" + arity + "[" + params + "] func(")
	for i := 1; i <= n; i++ {
		w.S("new" + strconv.Itoa(i) + " T" + strconv.Itoa(i) + ", ")
	}
	for i := 1; i <= n; i++ {
		w.S("old" + strconv.Itoa(i) + " T" + strconv.Itoa(i) + ", ")
	}
	w.S("onCleanup func(func())) error\n")

	w.S("\n")
	w.S("// Watch" + arity + " watches " + arity + " readable cells together and fires once per flush when\n")
	w.S("// any of their values changed.\n")
	w.S("func Watch" + arity + "[" + params + "](rs *ReactiveSystem, ")
	for i := 1; i <= n; i++ {
		w.S("r" + strconv.Itoa(i) + " Readable[T" + strconv.Itoa(i) + "], ")
	}
	w.S("cb " + cbType + ") (stop func()) {\n")
	w.S("\tw := &watcher" + arity + "[" + args + "]{rs: rs, ")
	for i := 1; i <= n; i++ {
		w.S("r" + strconv.Itoa(i) + ": r" + strconv.Itoa(i) + ", ")
	}
	w.S("cb: cb}\n")
	w.S("\tw.sub = newSubscriber(rs, w.step, nil)\n")
	w.S("\trs.adopt(w)\n")
	w.S("\tw.sub.Run()\n")
	w.S("\treturn w.Stop\n")
	w.S("}\n")

	w.S("\n")
	w.S("type watcher" + arity + "[" + params + "] struct {\n")
	w.S("\trs  *ReactiveSystem\n")
	w.S("\tsub *Subscriber\n")
	for i := 1; i <= n; i++ {
		w.S("\tr" + strconv.Itoa(i) + "  Readable[T" + strconv.Itoa(i) + "]\n")
	}
	w.S("\tcb  " + cbType + "\n")
	w.S("\n")
	for i := 1; i <= n; i++ {
		w.S("\told" + strconv.Itoa(i) + " T" + strconv.Itoa(i) + "\n")
	}
	w.S("\n")
	w.S("\tcleanups []func()\n")
	w.S("\tprimed   bool\n")
	w.S("}\n")

	w.S("\n")
	w.S("func (w *watcher" + arity + "[" + args + "]) step() error {\n")
	for i := 1; i <= n; i++ {
		w.S("\tv" + strconv.Itoa(i) + " := w.r" + strconv.Itoa(i) + ".Value()\n")
	}
	w.S("\tif !w.primed {\n")
	w.S("\t\tw.primed = true\n")
	for i := 1; i <= n; i++ {
		w.S("\t\tw.old" + strconv.Itoa(i) + " = v" + strconv.Itoa(i) + "\n")
	}
	w.S("\t\treturn nil\n")
	w.S("\t}\n")
	w.S("\tif ")
	for i := 1; i <= n; i++ {
		if i > 1 {
			w.S(" && ")
		}
		w.S("v" + strconv.Itoa(i) + " == w.old" + strconv.Itoa(i))
	}
	w.S(" {\n")
	w.S("\t\treturn nil\n")
	w.S("\t}\n")
	w.S("\tcleanups := w.cleanups\n")
	w.S("\tw.cleanups = nil\n")
	w.S("\tfor _, fn := range cleanups {\n")
	w.S("\t\tfn()\n")
	w.S("\t}\n")
	w.S("\tonCleanup := func(fn func()) {\n")
	w.S("\t\tw.cleanups = append(w.cleanups, fn)\n")
	w.S("\t}\n")
	w.S("\tw.rs.PauseTracking()\n")
	w.S("\tdefer w.rs.ResumeTracking()\n")
	w.S("\terr := w.cb(")
	for i := 1; i <= n; i++ {
		w.S("v" + strconv.Itoa(i) + ", ")
	}
	for i := 1; i <= n; i++ {
		w.S("w.old" + strconv.Itoa(i) + ", ")
	}
	w.S("onCleanup)\n")
	w.S("\tif err != nil {\n")
	w.S("\t\treturn err\n")
	w.S("\t}\n")
	for i := 1; i <= n; i++ {
		w.S("\tw.old" + strconv.Itoa(i) + " = v" + strconv.Itoa(i) + "\n")
	}
	w.S("\treturn nil\n")
	w.S("}\n")

	w.S("\n")
	w.S("func (w *watcher" + arity + "[" + args + "]) Stop() {\n")
	w.S("\tif !w.sub.active {\n")
	w.S("\t\treturn\n")
	w.S("\t}\n")
	w.S("\tw.sub.Stop()\n")
	w.S("\tcleanups := w.cleanups\n")
	w.S("\tw.cleanups = nil\n")
	w.S("\tfor _, fn := range cleanups {\n")
	w.S("\t\tfn()\n")
	w.S("\t}\n")
	w.S("}\n")
}
