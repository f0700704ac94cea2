// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command treestep advances the peg-solitaire exploration by one
// ply, or bootstraps the very first file. It is a thin wiring layer:
// all domain logic lives in packages board, position, radix and ply.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/pegsolitaire/treestep/archive"
	"github.com/pegsolitaire/treestep/fsbucket"
	"github.com/pegsolitaire/treestep/internal/logstream"
	"github.com/pegsolitaire/treestep/internal/rlimit"
	"github.com/pegsolitaire/treestep/ply"
	"github.com/pegsolitaire/treestep/statsio"
)

// minOpenFiles is the bucket-handle count (256 during a cascade
// transition) plus headroom for the data, stats, log and digest
// files the driver itself holds open.
const minOpenFiles = 512

func dataPath(root string, n int) string {
	return filepath.Join(root, "data", fmt.Sprintf("move_%02d.boards", n))
}

func main() {
	bufSize := flag.Int("bufsize", 0, "per-file I/O buffer size in bytes (default: see design notes on the radix memory budget)")
	root := flag.String("root", ".", "root directory containing data/, tmp/, stats/, logs/")
	shelve := flag.Bool("archive", false, "also write a zstd-compressed shelf copy of the output file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: treestep [flags] <startmove>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	startmove, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "treestep: startmove must be an integer: %v\n", err)
		os.Exit(2)
	}

	if *bufSize <= 0 {
		if env := os.Getenv("TREESTEP_BUFSIZE"); env != "" {
			if n, err := strconv.Atoi(env); err == nil {
				*bufSize = n
			}
		}
	}

	if err := rlimit.RaiseNoFile(minOpenFiles); err != nil {
		fmt.Fprintf(os.Stderr, "treestep: warning: %v\n", err)
	}

	logPath := logstream.FromPath(*root, startmove)
	if startmove == -1 {
		logPath = logstream.BootstrapPath(*root)
	}
	logger, logFile, err := logstream.Open(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "treestep: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	runID := uuid.New().String()
	logger.Printf("run %s: startmove=%d root=%s", runID, startmove, *root)

	if err := run(*root, *bufSize, startmove, runID, *shelve, logger); err != nil {
		logger.Printf("run %s: failed: %v", runID, err)
		fmt.Fprintf(os.Stderr, "treestep: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("run %s: ok", runID)
}

func run(root string, bufSize, startmove int, runID string, shelve bool, logger *log.Logger) error {
	factory := fsbucket.New(root, bufSize)

	var outPath string
	var stats ply.Stats
	var runErr error

	if startmove == -1 {
		outPath = dataPath(root, 0)
		w, err := fsbucket.CreateWriter(outPath, bufSize)
		if err != nil {
			return err
		}
		stats, runErr = ply.Bootstrap(w)
		if err := w.Close(); err != nil && runErr == nil {
			runErr = err
		}
	} else if startmove >= 0 {
		inPath := dataPath(root, startmove)
		outPath = dataPath(root, startmove+1)

		inData, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}
		if err := verifyInputDigest(inPath, inData); err != nil {
			return err
		}
		r := fsbucket.NewBytesReader(inData)
		w, err := fsbucket.CreateWriter(outPath, bufSize)
		if err != nil {
			return err
		}
		stats, runErr = ply.Advance(r, factory, w, func(state string) {
			logger.Printf("state: %s", state)
		})
		if err := w.Close(); err != nil && runErr == nil {
			runErr = err
		}
	} else {
		return fmt.Errorf("startmove must be -1 or >= 0, got %d", startmove)
	}

	data, fpErr := os.ReadFile(outPath)
	var fp uint64
	if fpErr != nil {
		if runErr == nil {
			runErr = fpErr
		}
	} else {
		fp = fingerprintData(data)
	}

	statsPath := statsio.Path(root, startmoveOut(startmove))
	doc := statsio.FromStats(stats, fp, runID)
	if err := statsio.WriteFile(statsPath, doc); err != nil {
		logger.Printf("warning: failed to write %s: %v", statsPath, err)
		if runErr == nil {
			runErr = err
		}
	}

	if runErr != nil {
		return runErr
	}

	if err := archive.WriteSidecar(outPath, data); err != nil {
		return err
	}
	if shelve {
		compressed := archive.Compress(data, nil)
		if err := os.WriteFile(outPath+".zst", compressed, 0o644); err != nil {
			return err
		}
	}

	logger.Printf("wrote %s: inboards=%d outboards_fil=%d runtime=%.3fs fingerprint=%#x",
		outPath, stats.InBoards, stats.OutBoardsFiltered, stats.Runtime, fp)
	return nil
}

// verifyInputDigest checks inPath's data against its ".digest"
// sidecar, if one exists, before any of data's records are decoded.
// A missing sidecar is not an error: the digest is optional (ply 0,
// for instance, may have been hand-placed by a test or a prior
// implementation). A mismatch is reported as-is; archive.Verify's
// *archive.MismatchError and any I/O failure reading the sidecar are
// both treated as ordinary I/O-class failures that abort the ply
// before ply.Advance ever runs.
func verifyInputDigest(inPath string, data []byte) error {
	if err := archive.Verify(inPath, data); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func startmoveOut(startmove int) int {
	if startmove == -1 {
		return 0
	}
	return startmove + 1
}

// fingerprintData folds every record in a just-written output file
// into a Fingerprinter, so the stats document's fingerprint covers
// the file exactly as it landed on disk.
func fingerprintData(data []byte) uint64 {
	f := statsio.NewFingerprinter()
	for _, line := range bytes.SplitAfter(data, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		f.Add(line)
	}
	return f.Sum()
}
