package bot

func (b *Bot) registerAll() {
	b.Registry.Register(b.startCommand())
	b.Registry.Register(b.helpCommand())
	b.Registry.Register(b.balanceCommand())
	b.Registry.Register(b.myIDCommand())
	b.Registry.Register(b.catalogCommand())
	b.Registry.Register(b.skinCommand())
	b.Registry.Register(b.photoCommand())
	b.Registry.Register(b.inventoryCommand())
	b.Registry.Register(b.adminCommand())
}
