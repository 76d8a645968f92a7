package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// TreeFile is the YAML layout read by "containers tree --file".
type TreeFile struct {
	Entries []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	} `yaml:"entries"`
	Erase []string `yaml:"erase"`
}

func loadTreeFile(path string) (*TreeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var f TreeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, nil
}

func newTreeCmd() *cobra.Command {
	var (
		file  string
		erase []string
		draw  bool
	)
	cmd := &cobra.Command{
		Use:   "tree [key=value ...]",
		Short: "Insert entries into an AVL tree, erase some, and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := Trees.New[string, string]()
			if file != "" {
				f, err := loadTreeFile(file)
				if err != nil {
					return err
				}
				for _, e := range f.Entries {
					if _, fresh := tree.Insert(e.Key, e.Value); !fresh {
						fmt.Fprintf(cmd.ErrOrStderr(), "duplicate key %q ignored\n", e.Key)
					}
				}
				erase = append(f.Erase, erase...)
			}
			for _, a := range args {
				k, v, ok := strings.Cut(a, "=")
				if !ok {
					return fmt.Errorf("entry %q is not key=value", a)
				}
				if _, fresh := tree.Insert(k, v); !fresh {
					fmt.Fprintf(cmd.ErrOrStderr(), "duplicate key %q ignored\n", k)
				}
			}
			for _, k := range erase {
				if tree.Erase(k) == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "key %q not found\n", k)
				}
			}
			out := cmd.OutOrStdout()
			if err := tree.Check(); err != nil {
				return err
			}
			if draw {
				if err := tree.Draw(out); err != nil {
					return err
				}
			}
			if err := tree.PrintInorder(out); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "size: %d, height: %d\n", tree.Size(), tree.Height())
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML file with entries and keys to erase")
	cmd.Flags().StringSliceVar(&erase, "erase", nil, "keys to erase after inserting")
	cmd.Flags().BoolVar(&draw, "draw", false, "draw the tree sideways before listing it")
	return cmd
}
