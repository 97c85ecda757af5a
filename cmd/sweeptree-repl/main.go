// sweeptree-repl is an interactive driver for the sweeptree library. It
// keeps a tree of int keys, performs the ordered descent on the caller's
// side the way a real consumer would, and renders the structure with nodes
// colored red or black.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phroun/sweeptree"
)

// REPL holds the state of the interactive session.
type REPL struct {
	tree   *sweeptree.Tree[int]
	pins   map[int]*int // stable addresses for the key handles
	reader *bufio.Reader

	redNode   *color.Color
	blackNode *color.Color
}

func main() {
	cmd := &cobra.Command{
		Use:   "sweeptree-repl",
		Short: "Interactive demo of the sweeptree cursor API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("Sweeptree REPL - Interactive Red-Black Tree Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		tree:      sweeptree.New[int](),
		pins:      make(map[int]*int),
		reader:    bufio.NewReader(os.Stdin),
		redNode:   color.New(color.FgRed, color.Bold),
		blackNode: color.New(color.FgWhite),
	}

	for {
		fmt.Print("sweeptree> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			fmt.Println("Goodbye!")
			return nil
		}

		if err := repl.execute(input); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func (r *REPL) execute(input string) error {
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		r.printHelp()
		return nil
	case "insert":
		return r.cmdInsert(args)
	case "delete":
		return r.cmdDelete(args)
	case "get":
		return r.cmdGet(args)
	case "swap":
		return r.cmdSwap(args)
	case "walk":
		return r.cmdWalk()
	case "dump":
		return r.cmdDump()
	case "len":
		fmt.Printf("%d nodes\n", r.tree.Len())
		return nil
	case "check":
		if err := r.tree.Check(); err != nil {
			return err
		}
		fmt.Println("all invariants hold")
		return nil
	case "clear":
		r.tree = sweeptree.New[int]()
		r.pins = make(map[int]*int)
		fmt.Println("cleared")
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  insert N [N...]  insert keys by ordered descent
  delete N         delete the node holding key N
  get N            look up key N through the index and show its neighborhood
  swap A B         exchange the tree slots of keys A and B
  walk             print keys in tree order
  dump             render the tree sideways (red/black colored)
  check            verify structural invariants
  len              number of nodes
  clear            start over with an empty tree
  quit             exit`)
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one key")
	}
	keys := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad key %q", a)
		}
		keys[i] = v
	}
	return keys, nil
}

// descend walks a cursor from the root to the empty slot where key belongs
// under int ordering. The library never compares keys; this loop is the
// caller-side half of the contract.
func (r *REPL) descend(key int) sweeptree.LeafCursor[int] {
	cur := r.tree.Root()
	for {
		nc, ok := cur.Node()
		if !ok {
			lc, _ := cur.Leaf()
			return lc
		}
		if key < *nc.Key() {
			cur = nc.LeftChild()
		} else {
			cur = nc.RightChild()
		}
	}
}

func (r *REPL) cmdInsert(args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if _, exists := r.pins[k]; exists {
			return fmt.Errorf("key %d already inserted", k)
		}
		h := new(int)
		*h = k
		r.descend(k).Insert(h).Release()
		r.pins[k] = h
		fmt.Printf("inserted %d\n", k)
	}
	return nil
}

func (r *REPL) cmdDelete(args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	for _, k := range keys {
		h, exists := r.pins[k]
		if !exists {
			return fmt.Errorf("key %d not present", k)
		}
		nc, ok := r.tree.Get(h)
		if !ok {
			return fmt.Errorf("key %d lost from index", k)
		}
		nc.Delete()
		delete(r.pins, k)
		fmt.Printf("deleted %d\n", k)
	}
	return nil
}

func (r *REPL) cmdGet(args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	k := keys[0]
	h, exists := r.pins[k]
	if !exists {
		return fmt.Errorf("key %d not present", k)
	}
	nc, ok := r.tree.Get(h)
	if !ok {
		return fmt.Errorf("key %d lost from index", k)
	}

	fmt.Printf("%d is %s", *nc.Key(), nc.Color())
	if p, ok := nc.Parent(); ok {
		fmt.Printf(", child of %d\n", *p.Key())
		p.Release()
	} else {
		fmt.Println(", at the root")
		nc.Release()
	}
	return nil
}

func (r *REPL) cmdSwap(args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	if len(keys) != 2 {
		return fmt.Errorf("swap needs exactly two keys")
	}
	a, okA := r.pins[keys[0]]
	b, okB := r.pins[keys[1]]
	if !okA || !okB {
		return fmt.Errorf("both keys must be present")
	}
	if err := r.tree.Swap(a, b); err != nil {
		return err
	}
	fmt.Printf("swapped %d and %d\n", keys[0], keys[1])
	return nil
}

func (r *REPL) cmdWalk() error {
	var keys []int
	r.tree.Walk(func(key *int) bool {
		keys = append(keys, *key)
		return true
	})
	fmt.Println(keys)
	return nil
}

// cmdDump renders the tree sideways, right subtree on top, driving a single
// cursor down and back up through the whole structure.
func (r *REPL) cmdDump() error {
	cur := r.tree.Root()
	nc, ok := cur.Node()
	if !ok {
		cur.Release()
		fmt.Println("(empty)")
		return nil
	}
	nc = r.dumpNode(nc, 0)
	nc.Release()
	return nil
}

// dumpNode prints the subtree at nc and returns a cursor to the same node.
// Descending consumes the cursor, so each visit climbs back up through
// Parent before moving on.
func (r *REPL) dumpNode(nc sweeptree.NodeCursor[int], depth int) sweeptree.NodeCursor[int] {
	cur := nc.RightChild()
	if child, ok := cur.Node(); ok {
		child = r.dumpNode(child, depth+1)
		nc, _ = child.Parent()
	} else {
		lf, _ := cur.Leaf()
		nc, _ = lf.Parent()
	}

	pen := r.blackNode
	if nc.Color() == sweeptree.Red {
		pen = r.redNode
	}
	fmt.Printf("%s%s\n", strings.Repeat("    ", depth), pen.Sprintf("%d", *nc.Key()))

	cur = nc.LeftChild()
	if child, ok := cur.Node(); ok {
		child = r.dumpNode(child, depth+1)
		nc, _ = child.Parent()
	} else {
		lf, _ := cur.Leaf()
		nc, _ = lf.Parent()
	}
	return nc
}
