package analysis

// Gather walks the results tree and parses every qualifying result
// file into one Record, stamped with the directory-derived thread and
// request counts and the file-derived queue name. Records are not
// deduplicated: repeated trial runs of the same configuration all land
// in the table. The first parse failure aborts the gather.
func Gather(cfg Config) (Table, error) {
	var table Table

	walker := NewWalker(cfg)
	err := walker.Walk(func(path string, threads, reqs int, queue string) error {
		rec, err := ParseResultFile(path)
		if err != nil {
			return err
		}
		rec.Threads = threads
		rec.RequestsPerClient = reqs
		rec.Queue = queue
		table = append(table, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}
