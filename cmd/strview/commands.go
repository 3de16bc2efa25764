package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/strview"
	"github.com/wippyai/strview/errors"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		size       int
		offset     int
		terminated bool
	)
	cmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Write TEXT into a zeroed buffer and print its bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := args[0]
			if size == 0 {
				n, err := a.view.ByteLength(text, a.enc())
				if err != nil {
					return err
				}
				size = offset + n
				if terminated {
					size++
				}
			}
			if size < 0 {
				return errors.InvalidInput(errors.PhaseEncode, fmt.Sprintf("size %d is negative", size))
			}

			buf := make(strview.Bytes, size)
			var (
				n   int
				err error
			)
			if terminated {
				n, err = a.view.WriteTerminated(buf, offset, text, a.enc())
			} else {
				n, err = a.view.WriteBounded(buf, offset, text, a.enc())
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, formatHex(buf))
			fmt.Fprintf(a.out, "written %d\n", n)
			if a.faults > 0 {
				fmt.Fprintf(a.out, "replaced %d\n", a.faults)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&size, "size", "n", 0, "buffer size in bytes (0 sizes the buffer to fit)")
	f.IntVarP(&offset, "offset", "o", 0, "byte offset to write at")
	f.BoolVarP(&terminated, "terminated", "t", false, "append the terminator byte")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		offset     int
		length     int
		terminated bool
		terminator int
	)
	cmd := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode hex-encoded bytes as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseHex(args[0])
			if err != nil {
				return err
			}
			buf := strview.Bytes(raw)

			var res struct {
				text     string
				consumed int
			}
			switch {
			case terminated && cmd.Flags().Changed("terminator"):
				if terminator < 0 || terminator > 0xFF {
					return errors.InvalidInput(errors.PhaseDecode, fmt.Sprintf("terminator %d is not a byte value", terminator))
				}
				r, err := a.view.ReadUntil(buf, offset, a.enc(), byte(terminator))
				if err != nil {
					return err
				}
				res.text, res.consumed = r.Text, r.BytesConsumed
			case terminated:
				r, err := a.view.ReadTerminated(buf, offset, a.enc())
				if err != nil {
					return err
				}
				res.text, res.consumed = r.Text, r.BytesConsumed
			case length < 0:
				r, err := a.view.ReadRemaining(buf, offset, a.enc())
				if err != nil {
					return err
				}
				res.text, res.consumed = r.Text, r.BytesConsumed
			default:
				r, err := a.view.ReadBounded(buf, offset, length, a.enc())
				if err != nil {
					return err
				}
				res.text, res.consumed = r.Text, r.BytesConsumed
			}

			fmt.Fprintln(a.out, a.highlight(res.text))
			fmt.Fprintf(a.out, "consumed %d\n", res.consumed)
			if a.faults > 0 {
				fmt.Fprintf(a.out, "replaced %d\n", a.faults)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&offset, "offset", "o", 0, "byte offset to read from")
	f.IntVarP(&length, "length", "l", -1, "bytes to read (-1 reads to the end)")
	f.BoolVarP(&terminated, "terminated", "t", false, "stop at the terminator byte")
	f.IntVar(&terminator, "terminator", 0, "terminator byte value (default from config)")
	return cmd
}

func newLengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "length TEXT",
		Short: "Print the encoded byte length of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := a.view.ByteLength(args[0], a.enc())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, n)
			return nil
		},
	}
}

func newEncodingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List registered encodings",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			def := a.enc()
			for _, name := range a.view.Encodings() {
				if name == def {
					fmt.Fprintf(a.out, "%s *\n", name)
					continue
				}
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

// parseHex accepts "e282ac", "E2 82 AC" and "0xE2,0x82,0xAC".
func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ",", "", "0x", "", "0X", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "parse hex input")
	}
	return b, nil
}

func formatHex(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}
