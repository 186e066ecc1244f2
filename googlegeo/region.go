package googlegeo

// Region biases geocoding toward a region. Values are country-code top-level
// domains in the API's dot-prefixed wire form.
type Region string

const (
	AscensionIsland                        Region = ".ac"
	Andorra                                Region = ".ad"
	UnitedArabEmirates                     Region = ".ae"
	Afghanistan                            Region = ".af"
	AntiguaAndBarbuda                      Region = ".ag"
	Anguilla                               Region = ".ai"
	Albania                                Region = ".al"
	Armenia                                Region = ".am"
	AntillesNetherlands                    Region = ".an"
	Angola                                 Region = ".ao"
	Antarctica                             Region = ".aq"
	Argentina                              Region = ".ar"
	AmericanSamoa                          Region = ".as"
	Austria                                Region = ".at"
	Australia                              Region = ".au"
	Aruba                                  Region = ".aw"
	AlandIslands                           Region = ".ax"
	Azerbaijan                             Region = ".az"
	BosniaAndHerzegovina                   Region = ".ba"
	Barbados                               Region = ".bb"
	Bangladesh                             Region = ".bd"
	Belgium                                Region = ".be"
	BurkinaFaso                            Region = ".bf"
	Bulgaria                               Region = ".bg"
	Bahrain                                Region = ".bh"
	Burundi                                Region = ".bi"
	Benin                                  Region = ".bj"
	SaintBarthelemy                        Region = ".bl"
	Bermuda                                Region = ".bm"
	BruneiDarussalam                       Region = ".bn"
	Bolivia                                Region = ".bo"
	BonaireSintEustatiusAndSaba            Region = ".bq"
	Brazil                                 Region = ".br"
	Bahamas                                Region = ".bs"
	Bhutan                                 Region = ".bt"
	BouvetIsland                           Region = ".bv"
	Botswana                               Region = ".bw"
	Belarus                                Region = ".by"
	Belize                                 Region = ".bz"
	Canada                                 Region = ".ca"
	CocosIslands                           Region = ".cc"
	DemocraticRepublicOfTheCongo           Region = ".cd"
	CentralAfricanRepublic                 Region = ".cf"
	RepublicOfCongo                        Region = ".cg"
	Switzerland                            Region = ".ch"
	CoteDivoire                            Region = ".ci"
	CookIslands                            Region = ".ck"
	Chile                                  Region = ".cl"
	Cameroon                               Region = ".cm"
	China                                  Region = ".cn"
	Colombia                               Region = ".co"
	CostaRica                              Region = ".cr"
	Cuba                                   Region = ".cu"
	CapeVerde                              Region = ".cv"
	Curacao                                Region = ".cw"
	ChristmasIsland                        Region = ".cx"
	Cyprus                                 Region = ".cy"
	CzechRepublic                          Region = ".cz"
	Germany                                Region = ".de"
	Djibouti                               Region = ".dj"
	Denmark                                Region = ".dk"
	Dominica                               Region = ".dm"
	DominicanRepublic                      Region = ".do"
	Algeria                                Region = ".dz"
	Ecuador                                Region = ".ec"
	Estonia                                Region = ".ee"
	Egypt                                  Region = ".eg"
	WesternSahara                          Region = ".eh"
	Eritrea                                Region = ".er"
	Spain                                  Region = ".es"
	Ethiopia                               Region = ".et"
	EuropeanUnion                          Region = ".eu"
	Finland                                Region = ".fi"
	Fiji                                   Region = ".fj"
	FalklandIslands                        Region = ".fk"
	FederatedStatesOfMicronesia            Region = ".fm"
	FaroeIslands                           Region = ".fo"
	France                                 Region = ".fr"
	Gabon                                  Region = ".ga"
	Grenada                                Region = ".gd"
	Georgia                                Region = ".ge"
	FrenchGuiana                           Region = ".gf"
	Guernsey                               Region = ".gg"
	Ghana                                  Region = ".gh"
	Gibraltar                              Region = ".gi"
	Greenland                              Region = ".gl"
	Gambia                                 Region = ".gm"
	Guinea                                 Region = ".gn"
	Guadeloupe                             Region = ".gp"
	EquatorialGuinea                       Region = ".gq"
	Greece                                 Region = ".gr"
	SouthGeorgiaAndTheSouthSandwichIslands Region = ".gs"
	Guatemala                              Region = ".gt"
	Guam                                   Region = ".gu"
	GuineaBissau                           Region = ".gw"
	Guyana                                 Region = ".gy"
	HongKong                               Region = ".hk"
	HeardIslandAndMcDonaldIslands          Region = ".hm"
	Honduras                               Region = ".hn"
	Croatia                                Region = ".hr"
	Haiti                                  Region = ".ht"
	Hungary                                Region = ".hu"
	Indonesia                              Region = ".id"
	Ireland                                Region = ".ie"
	Israel                                 Region = ".il"
	IsleOfMan                              Region = ".im"
	India                                  Region = ".in"
	BritishIndianOceanTerritory            Region = ".io"
	Iraq                                   Region = ".iq"
	IslamicRepublicOfIran                  Region = ".ir"
	Iceland                                Region = ".is"
	Italy                                  Region = ".it"
	Jersey                                 Region = ".je"
	Jamaica                                Region = ".jm"
	Jordan                                 Region = ".jo"
	Japan                                  Region = ".jp"
	Kenya                                  Region = ".ke"
	Kyrgyzstan                             Region = ".kg"
	Cambodia                               Region = ".kh"
	Kiribati                               Region = ".ki"
	Comoros                                Region = ".km"
	SaintKittsAndNevis                     Region = ".kn"
	DemocraticPeoplesRepublicOfKorea       Region = ".kp"
	RepublicOfKorea                        Region = ".kr"
	Kuwait                                 Region = ".kw"
	CaymanIslands                          Region = ".ky"
	Kazakhstan                             Region = ".kz"
	Laos                                   Region = ".la"
	Lebanon                                Region = ".lb"
	SaintLucia                             Region = ".lc"
	Liechtenstein                          Region = ".li"
	SriLanka                               Region = ".lk"
	Liberia                                Region = ".lr"
	Lesotho                                Region = ".ls"
	Lithuania                              Region = ".lt"
	Luxembourg                             Region = ".lu"
	Latvia                                 Region = ".lv"
	Libya                                  Region = ".ly"
	Morocco                                Region = ".ma"
	Monaco                                 Region = ".mc"
	RepublicOfMoldova                      Region = ".md"
	Montenegro                             Region = ".me"
	SaintMartin                            Region = ".mf"
	Madagascar                             Region = ".mg"
	MarshallIslands                        Region = ".mh"
	Macedonia                              Region = ".mk"
	Mali                                   Region = ".ml"
	Myanmar                                Region = ".mm"
	Mongolia                               Region = ".mn"
	Macao                                  Region = ".mo"
	NorthernMarianaIslands                 Region = ".mp"
	Martinique                             Region = ".mq"
	Mauritania                             Region = ".mr"
	Montserrat                             Region = ".ms"
	Malta                                  Region = ".mt"
	Mauritius                              Region = ".mu"
	Maldives                               Region = ".mv"
	Malawi                                 Region = ".mw"
	Mexico                                 Region = ".mx"
	Malaysia                               Region = ".my"
	Mozambique                             Region = ".mz"
	Namibia                                Region = ".na"
	NewCaledonia                           Region = ".nc"
	Niger                                  Region = ".ne"
	NorfolkIsland                          Region = ".nf"
	Nigeria                                Region = ".ng"
	Nicaragua                              Region = ".ni"
	Netherlands                            Region = ".nl"
	Norway                                 Region = ".no"
	Nepal                                  Region = ".np"
	Nauru                                  Region = ".nr"
	Niue                                   Region = ".nu"
	NewZealand                             Region = ".nz"
	Oman                                   Region = ".om"
	Panama                                 Region = ".pa"
	Peru                                   Region = ".pe"
	FrenchPolynesia                        Region = ".pf"
	PapuaNewGuinea                         Region = ".pg"
	Philippines                            Region = ".ph"
	Pakistan                               Region = ".pk"
	Poland                                 Region = ".pl"
	SaintPierreAndMiquelon                 Region = ".pm"
	Pitcairn                               Region = ".pn"
	PuertoRico                             Region = ".pr"
	Palestine                              Region = ".ps"
	Portugal                               Region = ".pt"
	Palau                                  Region = ".pw"
	Paraguay                               Region = ".py"
	Qatar                                  Region = ".qa"
	Reunion                                Region = ".re"
	Romania                                Region = ".ro"
	Serbia                                 Region = ".rs"
	Russia                                 Region = ".ru"
	Rwanda                                 Region = ".rw"
	SaudiArabia                            Region = ".sa"
	SolomonIslands                         Region = ".sb"
	Seychelles                             Region = ".sc"
	Sudan                                  Region = ".sd"
	Sweden                                 Region = ".se"
	Singapore                              Region = ".sg"
	SaintHelena                            Region = ".sh"
	Slovenia                               Region = ".si"
	SvalbardAndJanMayen                    Region = ".sj"
	Slovakia                               Region = ".sk"
	SierraLeone                            Region = ".sl"
	SanMarino                              Region = ".sm"
	Senegal                                Region = ".sn"
	Somalia                                Region = ".so"
	Suriname                               Region = ".sr"
	SouthSudan                             Region = ".ss"
	SaoTomeAndPrincipe                     Region = ".st"
	SovietUnion                            Region = ".su"
	ElSalvador                             Region = ".sv"
	SintMaarten                            Region = ".sx"
	Syria                                  Region = ".sy"
	Swaziland                              Region = ".sz"
	TurksAndCaicosIslands                  Region = ".tc"
	Chad                                   Region = ".td"
	FrenchSouthernTerritories              Region = ".tf"
	Togo                                   Region = ".tg"
	Thailand                               Region = ".th"
	Tajikistan                             Region = ".tj"
	Tokelau                                Region = ".tk"
	TimorLeste                             Region = ".tl"
	Turkmenistan                           Region = ".tm"
	Tunisia                                Region = ".tn"
	Tonga                                  Region = ".to"
	PortugueseTimor                        Region = ".tp"
	Turkey                                 Region = ".tr"
	TrinidadAndTobago                      Region = ".tt"
	Tuvalu                                 Region = ".tv"
	Taiwan                                 Region = ".tw"
	Tanzania                               Region = ".tz"
	Ukraine                                Region = ".ua"
	Uganda                                 Region = ".ug"
	UnitedKingdom                          Region = ".uk"
	UnitedStatesMinorOutlyingIslands       Region = ".um"
	UnitedStates                           Region = ".us"
	Uruguay                                Region = ".uy"
	Uzbekistan                             Region = ".uz"
	VaticanCity                            Region = ".va"
	SaintVincentAndTheGrenadines           Region = ".vc"
	Venezuela                              Region = ".ve"
	BritishVirginIslands                   Region = ".vg"
	USVirginIslands                        Region = ".vi"
	Vietnam                                Region = ".vn"
	Vanuatu                                Region = ".vu"
	WallisAndFutuna                        Region = ".wf"
	Samoa                                  Region = ".ws"
	Mayotte                                Region = ".yt"
	SouthAfrica                            Region = ".za"
	Zambia                                 Region = ".zm"
	Zimbabwe                               Region = ".zw"
)

func (r Region) tag() string { return string(r) }
