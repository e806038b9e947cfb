package main

type uiState struct {
	mode          mode
	command       CommandInput
	timeAgo       timeAgoDrawer
	noticeMsg     string
	noticeType    string
	noticeSeq     int
	searchQuery   string
	visibleStart  int
	visibleEnd    int
	lastExportDir string
}
