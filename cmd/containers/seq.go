package main

import (
	"fmt"

	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/g-m-twostay/go-containers/Stacks"
	"github.com/g-m-twostay/go-containers/Vectors"
	"github.com/spf13/cobra"
)

func topology(null bool) Lists.Topology {
	if null {
		return Lists.NullTerminated
	}
	return Lists.Circular
}

func newListCmd() *cobra.Command {
	var null, reverse bool
	cmd := &cobra.Command{
		Use:   "list [value ...]",
		Short: "Build a singly linked list and print it both ways",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := Lists.NewForward[string](topology(null))
			for _, a := range args {
				l.PushBack(a)
			}
			if reverse {
				l.Reverse()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s list of %d: ", l.Topology(), l.Size())
			if err := l.PrintForward(out); err != nil {
				return err
			}
			fmt.Fprint(out, "\nbackward: ")
			if err := l.PrintBackward(out); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&null, "null", false, "use a null-terminated list instead of a circular one")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "reverse the list before printing")
	return cmd
}

func newQueueCmd() *cobra.Command {
	var capacity int
	cmd := &cobra.Command{
		Use:   "queue [value ...]",
		Short: "Push values through a queue and print them in the order they leave",
		RunE: func(cmd *cobra.Command, args []string) error {
			var q Queues.Queue[string]
			if capacity > 0 {
				q = Queues.MakeArrayQueue[string](capacity)
			} else {
				q = Queues.NewOverVector(Vectors.New[string](Vectors.Extendable, 0, 0))
			}
			for _, a := range args {
				if err := q.Push(a); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			for !q.Empty() {
				v, _ := q.Pop()
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "use a fixed array queue of this capacity")
	return cmd
}

func newStackCmd() *cobra.Command {
	var capacity int
	cmd := &cobra.Command{
		Use:   "stack [value ...]",
		Short: "Push values on a stack and print them in the order they leave",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *Stacks.Stack[string]
			if capacity > 0 {
				s = Stacks.NewFixed[string](capacity)
			} else {
				var err error
				if s, err = Stacks.New[string](Lists.NewList[string](Lists.Circular)); err != nil {
					return err
				}
			}
			for _, a := range args {
				if err := s.Push(a); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			for !s.Empty() {
				v, _ := s.Pop()
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "use a fixed array stack of this capacity")
	return cmd
}
