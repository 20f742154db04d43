package libfig

import (
	"github.com/arcspace/go-arc-sdk/stdlib/symbol"
	"github.com/arcspace/go-arc-sdk/stdlib/symbol/memory_table"
	"github.com/dgraph-io/badger/v3"

	"github.com/figure-systems/gofig/gofig"
)

// CanonicSet records canonical figure expressions and reports whether an
// equivalent figure was already added. Backing storage is an in-memory
// badger instance; nothing touches disk.
type CanonicSet interface {
	gofig.FigureAdder

	// Close removes all previously added items from this set.
	//
	// If you make subsequent calls to TryAddFigure(), call Close() when you're done.
	Close()
}

func NewCanonicSet() CanonicSet {
	return &canonicSet{}
}

type canonicSet struct {
	lsmSet
}

func (set *canonicSet) TryAddFigure(X gofig.Figure) bool {
	var buf [256]byte
	key := X.AppendExprTo(buf[:0])
	return set.tryAdd(key)
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}

// ExprSet is a lighter add-if-absent set over figure expressions, backed by
// an in-memory symbol table. Suited for audits that only need membership.
type ExprSet struct {
	table symbol.Table
}

func NewExprSet() (*ExprSet, error) {
	tableOpts := memory_table.DefaultOpts()
	table, err := tableOpts.CreateTable()
	if err != nil {
		return nil, err
	}
	return &ExprSet{table: table}, nil
}

func (set *ExprSet) TryAddFigure(X gofig.Figure) bool {
	var buf [256]byte
	key := X.AppendExprTo(buf[:0])
	_, newlyIssued := set.table.GetSymbolID(key, true)
	return newlyIssued
}
