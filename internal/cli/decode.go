package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subdec/internal/decoder"
	"subdec/internal/styledtext"
	"subdec/internal/subtitle"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [subtitle_file]",
	Short: "Decode a subtitle file into styled text segments",
	Long: `Decode every cue of an SRT or VTT file: convert it from its source
encoding to UTF-8 and parse the inline markup into styled segments.

Without --output the segments are printed as a table. With --output the
decoded cues are written back out as plain text with all markup removed.

Examples:
  subdec decode movie.srt
  subdec decode movie.srt --fallback-encoding Windows-1251
  subdec decode movie.srt --encoding Shift_JIS --justify left
  subdec decode movie.srt -o stripped.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().
		StringP("encoding", "e", "", "Encoding declared by the source (overrides detection)")
	decodeCmd.Flags().
		String("fallback-encoding", "", "Encoding to assume when the source declares none ('system' = platform default)")
	decodeCmd.Flags().
		Bool("autodetect-utf8", true, "Trust cues that already validate as UTF-8")
	decodeCmd.Flags().
		StringP("justify", "j", "center", "Horizontal alignment bias (center, left, right)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	encoding, _ := cmd.Flags().GetString("encoding")
	fallback, _ := cmd.Flags().GetString("fallback-encoding")
	autodetect, _ := cmd.Flags().GetBool("autodetect-utf8")
	justifyStr, _ := cmd.Flags().GetString("justify")
	outputPath, _ := cmd.Flags().GetString("output")

	justify, err := parseJustify(justifyStr)
	if err != nil {
		return err
	}

	sub, err := subtitle.Open(subtitlePath)
	if err != nil {
		return err
	}

	sess := decoder.NewSession(decoder.Options{
		Encoding:         encoding,
		FallbackEncoding: fallback,
		AutodetectUTF8:   autodetect,
		Justify:          justify,
	}, logger)

	logger.Infow("Decoding subtitle file",
		"input", subtitlePath,
		"encoding", sess.Encoding(),
		"cues", len(sub.Entries),
	)

	var (
		cues    []subtitle.Cue
		rows    [][]string
		dropped int
	)
	for i, entry := range sub.Entries {
		res, err := sess.Decode(entry.Raw)
		if err != nil {
			if !errors.Is(err, decoder.ErrEmptyPacket) {
				logger.Warnw("Dropping cue",
					"cue", i+1,
					"error", err,
				)
			}
			dropped++
			continue
		}

		var text strings.Builder
		for j, seg := range res.Segments {
			text.WriteString(seg.Text)

			cueCol, timeCol := "", ""
			if j == 0 {
				cueCol = fmt.Sprintf("%d", i+1)
				timeCol = fmt.Sprintf("%v - %v", entry.StartTime, entry.EndTime)
			}
			rows = append(rows, []string{
				cueCol,
				timeCol,
				res.Alignment.String(),
				seg.Style.String(),
				seg.Text,
			})
		}

		cues = append(cues, subtitle.Cue{
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Text:      text.String(),
		})
	}

	if outputPath != "" {
		writer, err := subtitle.NewWriter(subtitle.GetFormatFromExtension(outputPath))
		if err != nil {
			return err
		}
		if err := writer.Write(cues, outputPath); err != nil {
			return fmt.Errorf("failed to write decoded subtitles: %w", err)
		}
		absOutput, _ := filepath.Abs(outputPath)
		fmt.Printf("Decoded subtitles written: %s\n", absOutput)
	} else {
		fmt.Println(renderTable(
			[]string{"Cue", "Time", "Align", "Style", "Text"},
			rows,
		))
	}

	fmt.Printf("Cues: %d decoded, %d dropped\n", len(cues), dropped)

	return nil
}

func parseJustify(s string) (styledtext.Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return styledtext.AlignCenter, nil
	case "left":
		return styledtext.AlignLeft, nil
	case "right":
		return styledtext.AlignRight, nil
	default:
		return 0, fmt.Errorf("invalid justification %q: use center, left or right", s)
	}
}
