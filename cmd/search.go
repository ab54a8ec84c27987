package cmd

// Search prints entries matching query across website, username and
// category, without passwords.
func Search(path, query string) {
	s := UnlockOrExit(path)
	defer s.Lock()

	entries, err := s.Search(query)
	if err != nil {
		HandleError(err)
	}

	printEntries(entries)
}
