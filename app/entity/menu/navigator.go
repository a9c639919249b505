package menu

// Navigator はキーボードやマウスでのメニュー操作の状態を保持する
type Navigator struct {
	bar  *Bar
	open int // 開いているメニュー。-1 なら閉じている
	item int // 選択中の項目。-1 なら項目なし
}

func NewNavigator(bar *Bar) *Navigator {
	return &Navigator{bar: bar, open: -1, item: -1}
}

// IsOpen はメニューが開いているかを返す
func (n *Navigator) IsOpen() bool {
	return n.open >= 0
}

// OpenMenu は i 番目のメニューを開き、最初の項目を選択する
func (n *Navigator) OpenMenu(i int) {
	if len(n.bar.Menus) == 0 {
		return
	}
	i = ((i % len(n.bar.Menus)) + len(n.bar.Menus)) % len(n.bar.Menus)
	n.open = i
	n.item = n.firstSelectable()
}

// Close はメニューを閉じる
func (n *Navigator) Close() {
	n.open = -1
	n.item = -1
}

// Left は左隣のメニューに移る
func (n *Navigator) Left() {
	if n.IsOpen() {
		n.OpenMenu(n.open - 1)
	}
}

// Right は右隣のメニューに移る
func (n *Navigator) Right() {
	if n.IsOpen() {
		n.OpenMenu(n.open + 1)
	}
}

// Down は次の選択可能な項目に移る（区切り線は飛ばす）
func (n *Navigator) Down() {
	n.step(1)
}

// Up は前の選択可能な項目に移る（区切り線は飛ばす）
func (n *Navigator) Up() {
	n.step(-1)
}

// Select は開いているメニューの i 番目の項目を選択する
func (n *Navigator) Select(i int) bool {
	if !n.IsOpen() {
		return false
	}
	items := n.bar.Menus[n.open].Items
	if i < 0 || i >= len(items) || items[i].Separator {
		return false
	}
	n.item = i
	return true
}

// Current は選択中の項目を返す
func (n *Navigator) Current() (Item, bool) {
	if !n.IsOpen() || n.item < 0 {
		return Item{}, false
	}
	return n.bar.Menus[n.open].Items[n.item], true
}

// OpenIndex は開いているメニューと選択中の項目のインデックスを返す
func (n *Navigator) OpenIndex() (menu int, item int) {
	return n.open, n.item
}

func (n *Navigator) step(delta int) {
	if !n.IsOpen() {
		return
	}
	items := n.bar.Menus[n.open].Items
	if len(items) == 0 {
		return
	}
	i := n.item
	for range items {
		i = ((i+delta)%len(items) + len(items)) % len(items)
		if !items[i].Separator {
			n.item = i
			return
		}
	}
}

func (n *Navigator) firstSelectable() int {
	for i, item := range n.bar.Menus[n.open].Items {
		if !item.Separator {
			return i
		}
	}
	return -1
}
