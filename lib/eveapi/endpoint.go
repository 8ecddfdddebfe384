package eveapi

// endpoint statically binds a feed to its resource path, whether the
// credential pair applies, and the decoder for its document shape.
type endpoint struct {
	path    string
	auth    bool
	decoder decoder
}

var (
	epRefTypes       = endpoint{path: "eve/RefTypes.xml.aspx", decoder: fold("refTypeID")}
	epCharacterID    = endpoint{path: "eve/CharacterID.xml.aspx", decoder: fold()}
	epCharacterName  = endpoint{path: "eve/CharacterName.xml.aspx", decoder: fold("characterID")}
	epStationList    = endpoint{path: "eve/ConquerableStationList.xml.aspx", decoder: fold("stationID")}
	epSkillTree      = endpoint{path: "eve/SkillTree.xml.aspx", decoder: domDecoder{}}
	epCharacterInfo  = endpoint{path: "eve/CharacterInfo.xml.aspx", auth: true, decoder: fold("recordID")}
	epSovereignty    = endpoint{path: "map/Sovereignty.xml.aspx", decoder: fold("solarSystemID")}
	epServerStatus   = endpoint{path: "server/ServerStatus.xml.aspx", decoder: fold()}
	epCharacters     = endpoint{path: "account/Characters.xml.aspx", auth: true, decoder: fold("characterID")}
	epAPIKeyInfo     = endpoint{path: "account/APIKeyInfo.xml.aspx", auth: true, decoder: fold("characterID")}
	epAccountStatus  = endpoint{path: "account/AccountStatus.xml.aspx", auth: true, decoder: fold()}
	epCharacterSheet = endpoint{
		path: "char/CharacterSheet.xml.aspx", auth: true,
		decoder: fold("typeID", "certificateID", "roleID", "titleID"),
	}
	epSkillInTraining    = endpoint{path: "char/SkillInTraining.xml.aspx", auth: true, decoder: fold()}
	epAssetList          = endpoint{path: "char/AssetList.xml.aspx", auth: true, decoder: fold("itemID")}
	epWalletJournal      = endpoint{path: "char/WalletJournal.xml.aspx", auth: true, decoder: fold("refID")}
	epWalletTransactions = endpoint{path: "char/WalletTransactions.xml.aspx", auth: true, decoder: fold("transactionID")}
	epContracts          = endpoint{path: "char/Contracts.xml.aspx", auth: true, decoder: fold("contractID")}
	epContractItems      = endpoint{path: "char/ContractItems.xml.aspx", auth: true, decoder: fold("recordID")}
	epIndustryJobs       = endpoint{path: "char/IndustryJobs.xml.aspx", auth: true, decoder: fold("jobID")}
	epMailMessages       = endpoint{path: "char/MailMessages.xml.aspx", auth: true, decoder: fold("messageID")}
	epMailBodies         = endpoint{path: "char/MailBodies.xml.aspx", auth: true, decoder: fold("messageID")}
	epMailingLists       = endpoint{path: "char/MailingLists.xml.aspx", auth: true, decoder: fold("listID")}
	epContactList        = endpoint{path: "char/ContactList.xml.aspx", auth: true, decoder: fold("contactID")}
	epStarbaseList       = endpoint{path: "corp/StarbaseList.xml.aspx", auth: true, decoder: fold("itemID")}
	epStarbaseDetail     = endpoint{path: "corp/StarbaseDetail.xml.aspx", auth: true, decoder: fold("typeID")}
	epCorporationSheet   = endpoint{path: "corp/CorporationSheet.xml.aspx", auth: true, decoder: fold("accountKey")}
)
