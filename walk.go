package ecbor

import "errors"

// ErrSkipVisit can be returned by VisitArrayStart, VisitMapStart or
// VisitTagStart to skip descending into the current item's children
// without aborting the walk, in the same spirit as the teacher codec's
// schema/body walker.
var ErrSkipVisit = errors.New("ecbor: skip visit")

// Visitor receives callbacks while Walk traverses a tree-decoded Item.
// VisitArrayStart, VisitMapStart and VisitTagStart may return
// ErrSkipVisit to skip the current item's children and its matching End
// callback; any other non-nil error, including ErrSkipVisit returned by
// VisitValue or an End method, aborts the walk and is returned from Walk
// unchanged.
type Visitor interface {
	VisitValue(item *Item) error
	VisitArrayStart(item *Item) error
	VisitArrayEnd(item *Item) error
	VisitMapStart(item *Item) error
	VisitMapEnd(item *Item) error
	VisitTagStart(item *Item) error
	VisitTagEnd(item *Item) error
}

// Walk traverses root (and, transitively, everything reachable through
// Child/Next) depth-first, calling visitor's callbacks. root must come
// from a TreeDecoder: Walk follows Child/Next links directly and does
// not re-parse borrowed byte ranges the way the accessor methods do for
// non-tree-decoded items.
func Walk(root *Item, visitor Visitor) error {
	if root == nil {
		return ErrNilItem
	}
	return walkItem(root, visitor)
}

func walkItem(item *Item, visitor Visitor) error {
	switch item.Type {
	case TypeArray:
		if err := visitor.VisitArrayStart(item); err != nil {
			if err == ErrSkipVisit {
				return nil
			}
			return err
		}
		if err := walkChildren(item, visitor); err != nil {
			return err
		}
		return visitor.VisitArrayEnd(item)

	case TypeMap:
		if err := visitor.VisitMapStart(item); err != nil {
			if err == ErrSkipVisit {
				return nil
			}
			return err
		}
		if err := walkChildren(item, visitor); err != nil {
			return err
		}
		return visitor.VisitMapEnd(item)

	case TypeTag:
		if err := visitor.VisitTagStart(item); err != nil {
			if err == ErrSkipVisit {
				return nil
			}
			return err
		}
		if item.Child != nil {
			if err := walkItem(item.Child, visitor); err != nil {
				return err
			}
		}
		return visitor.VisitTagEnd(item)

	default:
		return visitor.VisitValue(item)
	}
}

func walkChildren(parent *Item, visitor Visitor) error {
	for child := parent.Child; child != nil; child = child.Next {
		if err := walkItem(child, visitor); err != nil {
			return err
		}
	}
	return nil
}
