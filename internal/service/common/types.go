package common

// TableColumn はテーブルの列定義
type TableColumn struct {
	Header string
}

// DisplayOptions はリスト表示のオプション
type DisplayOptions struct {
	ShowCount    bool   // 件数を表示するか
	EmptyMessage string // 空の場合のメッセージ（デフォルト: "リソースが見つかりませんでした"）
}
